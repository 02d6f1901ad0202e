package report

import (
	"context"
	"fmt"

	"github.com/wonny/swapreport/internal/chart"
	"github.com/wonny/swapreport/internal/contracts"
	"github.com/wonny/swapreport/internal/dataset"
	"github.com/wonny/swapreport/internal/matcher"
	"github.com/wonny/swapreport/pkg/logger"
)

const (
	xTitle = "BLOCK NUMBERS"
	yTitle = "RATIOS"
)

// Options configures report generation
type Options struct {
	CleanInput  bool // run dataset.CleanSort on every input before loading
	ChartWidth  int
	ChartHeight int
}

// Service wires Loader → Matcher → Renderer
// ⭐ SSOT: 리포트 생성 흐름은 여기서만
type Service struct {
	renderer chart.Renderer
	logger   *logger.Logger
	opts     Options
}

// NewService creates a report service
func NewService(renderer chart.Renderer, log *logger.Logger, opts Options) *Service {
	if opts.ChartWidth <= 0 {
		opts.ChartWidth = chart.DefaultWidth
	}
	if opts.ChartHeight <= 0 {
		opts.ChartHeight = chart.DefaultHeight
	}
	return &Service{
		renderer: renderer,
		logger:   log,
		opts:     opts,
	}
}

// GenerateReportData charts the trades of one log that cleared targetRatio
func (s *Service) GenerateReportData(ctx context.Context, filePath string, targetRatio float64) (*contracts.ReportSummary, error) {
	ds, err := s.load(filePath, targetRatio)
	if err != nil {
		return nil, err
	}

	series := dataset.BlockRatios(ds.ProfitableTrades)
	cfg := contracts.ChartConfig{
		Type:        contracts.ChartTypeLine,
		Title:       fmt.Sprintf("Line Chart For %s", ds.FileName),
		XTitle:      xTitle,
		YTitle:      yTitle,
		XAxis:       contracts.AxisCategory,
		Labels:      series.BlockNumbers,
		Values:      series.Ratios,
		Width:       s.opts.ChartWidth,
		Height:      s.opts.ChartHeight,
		PointRadius: 3,
	}

	path, err := s.renderer.Render(ctx, ds.FileName, cfg)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"file":        ds.FileName,
		"block_count": ds.BlockCount,
		"cleared":     series.Len(),
		"chart":       path,
	}).Info("Report generated")

	return &contracts.ReportSummary{
		FileName:            ds.FileName,
		TargetRatio:         targetRatio,
		BlockCount:          ds.BlockCount,
		AvgRatio:            ds.AvgRatio,
		RatioStdDev:         ds.RatioStdDev,
		ClearThresholdCount: series.Len(),
		ProfitableRate:      ds.ProfitableRate(),
		ChartPath:           path,
		ProfitableTrades:    ds.ProfitableTrades,
	}, nil
}

// GenerateSub1ReportData schedules alternating buy/sell round trips across two
// logs and compounds the target ratios over them
func (s *Service) GenerateSub1ReportData(
	ctx context.Context,
	buyFilePath string,
	sellFilePath string,
	buyRatio float64,
	sellRatio float64,
) (*contracts.Sub1Summary, error) {
	buys, err := s.load(buyFilePath, buyRatio)
	if err != nil {
		return nil, err
	}
	sells, err := s.load(sellFilePath, sellRatio)
	if err != nil {
		return nil, err
	}

	schedule := matcher.Alternate(buys.ProfitableTrades, sells.ProfitableTrades)
	series := dataset.ScheduledBlockRatios(schedule)
	name := fmt.Sprintf("%s-%s", buys.FileName, sells.FileName)

	cfg := contracts.ChartConfig{
		Type:                 contracts.ChartTypeLine,
		Title:                fmt.Sprintf("Line Chart For %s and %s", buys.FileName, sells.FileName),
		XTitle:               xTitle,
		YTitle:               yTitle,
		XAxis:                contracts.AxisLinear,
		Labels:               series.BlockNumbers,
		Values:               series.Ratios,
		Width:                s.opts.ChartWidth,
		Height:               s.opts.ChartHeight,
		PointRadius:          9,
		AlternatePointColors: true,
	}

	path, err := s.renderer.Render(ctx, name, cfg)
	if err != nil {
		return nil, err
	}

	roundTrips := matcher.RoundTrips(len(schedule))

	s.logger.WithFields(map[string]interface{}{
		"name":        name,
		"buys":        len(buys.ProfitableTrades),
		"sells":       len(sells.ProfitableTrades),
		"round_trips": roundTrips,
		"chart":       path,
	}).Info("Sub1 report generated")

	return &contracts.Sub1Summary{
		Name:            name,
		BuyRatio:        buyRatio,
		SellRatio:       sellRatio,
		BuyProfitable:   len(buys.ProfitableTrades),
		SellProfitable:  len(sells.ProfitableTrades),
		RoundTrips:      roundTrips,
		ReturnForPeriod: matcher.ReturnForPeriod(buyRatio, sellRatio, roundTrips),
		ChartPath:       path,
		Trades:          schedule,
	}, nil
}

func (s *Service) load(filePath string, targetRatio float64) (*contracts.Dataset, error) {
	if s.opts.CleanInput {
		n, err := dataset.CleanSort(filePath)
		if err != nil {
			return nil, err
		}
		s.logger.WithField("file", filePath).Debugf("Cleaned and sorted %d rows", n)
	}

	ds, err := dataset.Load(filePath, targetRatio)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"file":         ds.FileName,
		"target_ratio": targetRatio,
		"block_count":  ds.BlockCount,
		"profitable":   ds.ClearThresholdCount(),
		"avg_ratio":    ds.AvgRatio,
	}).Debug("Dataset loaded")

	return ds, nil
}
