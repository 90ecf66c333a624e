package backend

import (
	"fmt"
	"time"

	clickv1 "github.com/gleb-syrov/bamboolead/api/gen/go/click/v1"
	commonv1 "github.com/gleb-syrov/bamboolead/api/gen/go/common/v1"
	integrationv1 "github.com/gleb-syrov/bamboolead/api/gen/go/integration/v1"
	statisticv1 "github.com/gleb-syrov/bamboolead/api/gen/go/statistic/v1"
	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
	"github.com/gleb-syrov/bamboolead/internal/platform/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// decoder collects the first malformed field of a backend message so the
// conversion functions stay linear.
type decoder struct {
	message string
	err     error
}

func (d *decoder) decimal(field, raw string) decimal.Decimal {
	if raw == "" || d.err != nil {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		d.err = fmt.Errorf("%s: %w", field, err)
		return decimal.Zero
	}
	return value
}

func (d *decoder) uuid(field, raw string) uuid.UUID {
	if raw == "" || d.err != nil {
		return uuid.Nil
	}
	value, err := uuid.Parse(raw)
	if err != nil {
		d.err = fmt.Errorf("%s: %w", field, err)
		return uuid.Nil
	}
	return value
}

// result reports a malformed message as a backend failure.
func (d *decoder) result() error {
	if d.err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.CodeBackendFailure, "decode "+d.message, d.err)
}

func timeOf(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func pageableReq(p Pageable) *commonv1.PageableReq {
	return &commonv1.PageableReq{Page: p.Page, Size: p.Size, Sort: p.Sort}
}

func pageInfo(p *commonv1.PageableRes) pagination.Info {
	return pagination.Info{
		Number:        p.GetNumber(),
		Size:          p.GetSize(),
		TotalElements: p.GetTotalElements(),
	}
}

func commandResponse(res *integrationv1.IntegrationCommandRes) *CommandResponse {
	return &CommandResponse{
		Success: res.GetSuccess(),
		Message: res.GetMessage(),
		ID:      res.GetId(),
	}
}

func clickTransactionFilter(in *ClickTransactionFilter) *clickv1.ClickTransactionFilter {
	return &clickv1.ClickTransactionFilter{
		Status:      in.Status,
		OfferId:     in.OfferID,
		PublisherId: in.PublisherID,
		Pageable:    pageableReq(in.Pageable),
	}
}

func (d *decoder) clickTransaction(pb *clickv1.ClickTransaction) ClickTransaction {
	return ClickTransaction{
		ID:          pb.GetId(),
		ClickID:     d.uuid("click_id", pb.GetClickId()),
		OfferID:     pb.GetOfferId(),
		PublisherID: pb.GetPublisherId(),
		Status:      pb.GetStatus(),
		IP:          pb.GetIp(),
		UserAgent:   pb.GetUserAgent(),
		Referer:     pb.GetReferer(),
		Country:     pb.GetCountry(),
		UTMSource:   pb.GetUtmSource(),
		UTMMedium:   pb.GetUtmMedium(),
		UTMCampaign: pb.GetUtmCampaign(),
		UTMContent:  pb.GetUtmContent(),
		UTMTerm:     pb.GetUtmTerm(),
		Payout:      d.decimal("payout", pb.GetPayout()),
		Revenue:     d.decimal("revenue", pb.GetRevenue()),
		CreatedAt:   timeOf(pb.GetCreatedAt()),
	}
}

func clickTransactionContainer(pb *clickv1.ClickTransactionContainer) (*ClickTransactionContainer, error) {
	d := &decoder{message: "click transactions"}
	out := &ClickTransactionContainer{
		ClickTransactions: make([]ClickTransaction, 0, len(pb.GetClickTransactions())),
		Pageable:          pageInfo(pb.GetPageable()),
	}
	for _, tx := range pb.GetClickTransactions() {
		out.ClickTransactions = append(out.ClickTransactions, d.clickTransaction(tx))
	}
	if err := d.result(); err != nil {
		return nil, err
	}
	return out, nil
}

func integrationReq(in IntegrationReq) *integrationv1.IntegrationReq {
	return &integrationv1.IntegrationReq{
		Name:        in.Name,
		OfferId:     in.OfferID,
		PublisherId: in.PublisherID,
		Url:         in.URL,
		Method:      in.Method,
		Status:      in.Status,
	}
}

func integrationInfo(pb *integrationv1.IntegrationInfoRes) *IntegrationInfo {
	return &IntegrationInfo{
		ID:          pb.GetId(),
		Name:        pb.GetName(),
		OfferID:     pb.GetOfferId(),
		PublisherID: pb.GetPublisherId(),
		URL:         pb.GetUrl(),
		Method:      pb.GetMethod(),
		Status:      pb.GetStatus(),
		CreatedAt:   timeOf(pb.GetCreatedAt()),
		UpdatedAt:   timeOf(pb.GetUpdatedAt()),
	}
}

func integrationPage(pb *integrationv1.IntegrationPageRes) *IntegrationPageRes {
	out := &IntegrationPageRes{
		Integrations: make([]IntegrationShortInfo, 0, len(pb.GetIntegrations())),
		Pageable:     pageInfo(pb.GetPageable()),
	}
	for _, in := range pb.GetIntegrations() {
		out.Integrations = append(out.Integrations, IntegrationShortInfo{
			ID:          in.GetId(),
			Name:        in.GetName(),
			OfferID:     in.GetOfferId(),
			PublisherID: in.GetPublisherId(),
			Status:      in.GetStatus(),
			CreatedAt:   timeOf(in.GetCreatedAt()),
		})
	}
	return out
}

func globalStatistic(pb *statisticv1.GlobalStatisticResp) (*GlobalStatistic, error) {
	d := &decoder{message: "global statistic"}
	out := &GlobalStatistic{
		Clicks:       pb.GetClicks(),
		UniqueClicks: pb.GetUniqueClicks(),
		Conversions:  pb.GetConversions(),
		Revenue:      d.decimal("revenue", pb.GetRevenue()),
		Payout:       d.decimal("payout", pb.GetPayout()),
		Profit:       d.decimal("profit", pb.GetProfit()),
	}
	return out, d.result()
}

func clicksPerDay(pb *statisticv1.ClicksPerDayResp) *ClicksPerDayResp {
	out := &ClicksPerDayResp{ClickPerDayList: make([]ClickPerDay, 0, len(pb.GetClickPerDayList()))}
	for _, day := range pb.GetClickPerDayList() {
		out.ClickPerDayList = append(out.ClickPerDayList, ClickPerDay{Date: day.GetDate(), Clicks: day.GetClicks()})
	}
	return out
}

func dailyStatistics(pb *statisticv1.DailyClickStatisticContainer) (*DailyClickStatisticContainer, error) {
	d := &decoder{message: "daily statistic"}
	out := &DailyClickStatisticContainer{
		DailyClickStatistic: make([]DailyClickStatistic, 0, len(pb.GetDailyClickStatistic())),
		Pageable:            pageInfo(pb.GetPageable()),
	}
	for _, day := range pb.GetDailyClickStatistic() {
		out.DailyClickStatistic = append(out.DailyClickStatistic, DailyClickStatistic{
			Date:         day.GetDate(),
			OfferID:      day.GetOfferId(),
			PublisherID:  day.GetPublisherId(),
			Clicks:       day.GetClicks(),
			UniqueClicks: day.GetUniqueClicks(),
			Conversions:  day.GetConversions(),
			Revenue:      d.decimal("revenue", day.GetRevenue()),
			Payout:       d.decimal("payout", day.GetPayout()),
		})
	}
	if err := d.result(); err != nil {
		return nil, err
	}
	return out, nil
}

func dailyStatisticTotal(pb *statisticv1.DailyClickStatisticTotalRes) (*DailyClickStatisticTotal, error) {
	d := &decoder{message: "daily statistic total"}
	out := &DailyClickStatisticTotal{
		Clicks:       pb.GetClicks(),
		UniqueClicks: pb.GetUniqueClicks(),
		Conversions:  pb.GetConversions(),
		Revenue:      d.decimal("revenue", pb.GetRevenue()),
		Payout:       d.decimal("payout", pb.GetPayout()),
	}
	return out, d.result()
}

func utmStatistics(pb *statisticv1.UtmStatisticRes) (*UtmStatisticRes, error) {
	d := &decoder{message: "utm statistic"}
	out := &UtmStatisticRes{
		UtmStatisticList: make([]UtmStatistic, 0, len(pb.GetUtmStatisticList())),
		Pageable:         pageInfo(pb.GetPageable()),
	}
	for _, row := range pb.GetUtmStatisticList() {
		out.UtmStatisticList = append(out.UtmStatisticList, UtmStatistic{
			Value:        row.GetValue(),
			Clicks:       row.GetClicks(),
			UniqueClicks: row.GetUniqueClicks(),
			Conversions:  row.GetConversions(),
			Revenue:      d.decimal("revenue", row.GetRevenue()),
		})
	}
	if err := d.result(); err != nil {
		return nil, err
	}
	return out, nil
}
