package service

import (
	"context"
	"sync"

	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/names"
)

type fakeResolver struct {
	names names.Names
	err   error
	calls int
	mu    sync.Mutex
}

func (f *fakeResolver) Resolve(context.Context) (names.Names, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.names, f.err
}

func testNames() *fakeResolver {
	return &fakeResolver{names: names.Names{
		Offers:     names.NewMap(map[int64]string{11: "Summer Promo"}),
		Publishers: names.NewMap(map[int64]string{7: "Acme Media"}),
	}}
}

type fakeClickBackend struct {
	lastFilter *backend.ClickTransactionFilter
	container  *backend.ClickTransactionContainer
	record     *backend.ClickTransaction
	err        error
}

func (f *fakeClickBackend) GetAllClickTransactions(_ context.Context, in *backend.ClickTransactionFilter) (*backend.ClickTransactionContainer, error) {
	f.lastFilter = in
	return f.container, f.err
}

func (f *fakeClickBackend) GetClickTransaction(context.Context, *backend.IDRequest) (*backend.ClickTransaction, error) {
	return f.record, f.err
}

type fakeIntegrationBackend struct {
	lastParams  *backend.IntegrationParamsReq
	lastUpdate  *backend.IntegrationUpdateReq
	lastStatus  *backend.IntegrationChangeStatusReq
	page        *backend.IntegrationPageRes
	info        *backend.IntegrationInfo
	placeholder *backend.ClickPlaceholdersRes
	command     *backend.CommandResponse
	err         error
}

func (f *fakeIntegrationBackend) Create(context.Context, *backend.IntegrationReq) (*backend.CommandResponse, error) {
	return f.command, f.err
}

func (f *fakeIntegrationBackend) Update(_ context.Context, in *backend.IntegrationUpdateReq) (*backend.CommandResponse, error) {
	f.lastUpdate = in
	return f.command, f.err
}

func (f *fakeIntegrationBackend) ChangeStatus(_ context.Context, in *backend.IntegrationChangeStatusReq) (*backend.CommandResponse, error) {
	f.lastStatus = in
	return f.command, f.err
}

func (f *fakeIntegrationBackend) GetIntegration(context.Context, *backend.IDRequest) (*backend.IntegrationInfo, error) {
	return f.info, f.err
}

func (f *fakeIntegrationBackend) GetAll(_ context.Context, in *backend.IntegrationParamsReq) (*backend.IntegrationPageRes, error) {
	f.lastParams = in
	return f.page, f.err
}

func (f *fakeIntegrationBackend) GetClickPlaceholders(context.Context, *backend.VoidRequest) (*backend.ClickPlaceholdersRes, error) {
	return f.placeholder, f.err
}

func (f *fakeIntegrationBackend) Delete(context.Context, *backend.IDRequest) (*backend.CommandResponse, error) {
	return f.command, f.err
}

type fakeStatisticBackend struct {
	lastFilter *backend.StatisticFilter
	lastUtm    *backend.UtmStatisticReq
	global     *backend.GlobalStatistic
	perDay     *backend.ClicksPerDayResp
	daily      *backend.DailyClickStatisticContainer
	total      *backend.DailyClickStatisticTotal
	utm        *backend.UtmStatisticRes
	err        error
}

func (f *fakeStatisticBackend) GetGlobalStatistic(_ context.Context, in *backend.StatisticFilter) (*backend.GlobalStatistic, error) {
	f.lastFilter = in
	return f.global, f.err
}

func (f *fakeStatisticBackend) GetClicksPerDay(_ context.Context, in *backend.StatisticFilter) (*backend.ClicksPerDayResp, error) {
	f.lastFilter = in
	return f.perDay, f.err
}

func (f *fakeStatisticBackend) GetAllDailyStatistic(_ context.Context, in *backend.StatisticFilter) (*backend.DailyClickStatisticContainer, error) {
	f.lastFilter = in
	return f.daily, f.err
}

func (f *fakeStatisticBackend) GetAllDailyStatisticTotal(_ context.Context, in *backend.StatisticFilter) (*backend.DailyClickStatisticTotal, error) {
	f.lastFilter = in
	return f.total, f.err
}

func (f *fakeStatisticBackend) GetUtmStatistic(_ context.Context, in *backend.UtmStatisticReq) (*backend.UtmStatisticRes, error) {
	f.lastUtm = in
	return f.utm, f.err
}
