package discovery

import "testing"

func TestDefaultGRPCAddr(t *testing.T) {
	cases := map[string]string{
		ServiceClick:       "click:9091",
		ServiceIntegration: "integration:9092",
		ServiceStatistic:   "statistic:9093",
		ServiceOffer:       "offer:9094",
		ServiceUser:        "user:9095",
		" click ":          "click:9091",
		"gateway":          "",
		"unknown":          "",
	}
	for service, want := range cases {
		if got := DefaultGRPCAddr(service); got != want {
			t.Fatalf("DefaultGRPCAddr(%q) = %q, want %q", service, got, want)
		}
	}
}

func TestOrDefaultGRPCAddr(t *testing.T) {
	if got := OrDefaultGRPCAddr(" custom:9000 ", ServiceClick); got != "custom:9000" {
		t.Fatalf("expected explicit grpc addr to win, got %q", got)
	}
	if got := OrDefaultGRPCAddr("", ServiceUser); got != "user:9095" {
		t.Fatalf("expected default grpc addr, got %q", got)
	}
}
