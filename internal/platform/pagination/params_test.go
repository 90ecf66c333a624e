package pagination

import "testing"

func TestClampPageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 20, Max: 100}
	tests := []struct {
		in   int32
		want int32
	}{
		{in: 0, want: 20},
		{in: -5, want: 20},
		{in: 50, want: 50},
		{in: 500, want: 100},
	}
	for _, tt := range tests {
		if got := ClampPageSize(tt.in, cfg); got != tt.want {
			t.Fatalf("ClampPageSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("ClampPageSize with empty config = %d, want 1", got)
	}
}

func TestNormalizeOrderBy(t *testing.T) {
	cfg := OrderByConfig{Default: "id,desc", Allowed: []string{"id", "createdAt"}}
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "default", in: "", want: "id,desc"},
		{name: "field only", in: "createdAt", want: "createdAt,asc"},
		{name: "desc", in: "id,desc", want: "id,desc"},
		{name: "upper asc", in: "id,ASC", want: "id,asc"},
		{name: "upper desc", in: "id,DESC", want: "id,desc"},
		{name: "spaced", in: " id , asc ", want: "id,asc"},
		{name: "spaced field only", in: "createdAt ", want: "createdAt,asc"},
		{name: "unknown field", in: "secret,desc", wantErr: true},
		{name: "bad direction", in: "id,sideways", wantErr: true},
		{name: "empty field", in: ",desc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeOrderBy(tt.in, cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalize order by: %v", err)
			}
			if got != tt.want {
				t.Fatalf("sort = %q, want %q", got, tt.want)
			}
		})
	}
}
