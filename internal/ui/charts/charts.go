// Package charts builds the server-rendered ECharts figures embedded in
// dashboard pages. Each builder returns a Snippet holding the chart's
// container element and init script as pre-escaped HTML; the page only
// needs the echarts runtime loaded once.
package charts

import (
	"html/template"
	"strconv"
	"time"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"

	"github.com/emberstack/firedash/internal/store"
)

// Series colors, one per metric family.
const (
	colorRed    = "#c0392b"
	colorBlue   = "#2980b9"
	colorGreen  = "#27ae60"
	colorOrange = "#e67e22"
	colorPurple = "#8e44ad"
)

// heatmapColors shade cells from low to high fire counts.
var heatmapColors = []string{"#fff5f0", "#fcbba1", "#fb6a4a", "#a50f15"}

// Snippet is a rendered chart ready for template embedding.
type Snippet struct {
	Element template.HTML
	Script  template.HTML
}

func newSnippet(s render.ChartSnippet) Snippet {
	return Snippet{
		Element: template.HTML(s.Element),
		Script:  template.HTML(s.Script),
	}
}

func sizeOpts() echarts.GlobalOpts {
	return echarts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "360px"})
}

// YearlyFires charts the number of fires recorded per year.
func YearlyFires(stats []store.YearlyStat) Snippet {
	data := make([]opts.LineData, 0, len(stats))
	for _, s := range stats {
		data = append(data, opts.LineData{Value: s.Fires})
	}
	return lineChart("Fires per Year", "Fires", colorRed, yearLabels(stats), data)
}

// YearlyAvgDuration charts the mean containment time per year.
func YearlyAvgDuration(stats []store.YearlyStat) Snippet {
	data := make([]opts.LineData, 0, len(stats))
	for _, s := range stats {
		data = append(data, opts.LineData{Value: s.AvgDurationDays})
	}
	return lineChart("Average Duration per Year (days)", "Days", colorBlue, yearLabels(stats), data)
}

// YearlyAvgSize charts the mean burned area per fire and year.
func YearlyAvgSize(stats []store.YearlyStat) Snippet {
	data := make([]opts.LineData, 0, len(stats))
	for _, s := range stats {
		data = append(data, opts.LineData{Value: s.AvgSizeKM2})
	}
	return lineChart("Average Fire Size per Year (km²)", "km²", colorGreen, yearLabels(stats), data)
}

// YearlyTotalBurned charts the total burned area per year.
func YearlyTotalBurned(stats []store.YearlyStat) Snippet {
	data := make([]opts.LineData, 0, len(stats))
	for _, s := range stats {
		data = append(data, opts.LineData{Value: s.TotalSizeKM2})
	}
	return lineChart("Total Area Burned per Year (km²)", "km²", colorOrange, yearLabels(stats), data)
}

// MonthlyLine charts fire counts per calendar month across the filtered years.
func MonthlyLine(counts []store.MonthlyCount) Snippet {
	months := make([]string, 0, len(counts))
	data := make([]opts.LineData, 0, len(counts))
	for _, c := range counts {
		months = append(months, monthShort(c.Month))
		data = append(data, opts.LineData{Value: c.Fires})
	}
	return lineChart("Fires by Month", "Fires", colorOrange, months, data)
}

// SeasonalPie shows the share of fires per season.
func SeasonalPie(stats []store.SeasonalStat) Snippet {
	data := make([]opts.PieData, 0, len(stats))
	for _, s := range stats {
		data = append(data, opts.PieData{Name: s.Season, Value: s.Fires})
	}
	pie := echarts.NewPie()
	pie.SetGlobalOptions(
		sizeOpts(),
		echarts.WithTitleOpts(opts.Title{Title: "Fires by Season"}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("Season", data,
		echarts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)
	return newSnippet(pie.RenderSnippet())
}

// SeasonalBar charts the mean containment time per season.
func SeasonalBar(stats []store.SeasonalStat) Snippet {
	seasons := make([]string, 0, len(stats))
	data := make([]opts.BarData, 0, len(stats))
	for _, s := range stats {
		seasons = append(seasons, s.Season)
		data = append(data, opts.BarData{Value: s.AvgDurationDays})
	}
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		sizeOpts(),
		echarts.WithTitleOpts(opts.Title{Title: "Average Duration by Season (days)"}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(seasons)
	bar.AddSeries("Days", data, echarts.WithItemStyleOpts(opts.ItemStyle{Color: colorBlue}))
	return newSnippet(bar.RenderSnippet())
}

// StateBarByFires ranks states by fire count. Bars run horizontally with
// the top state first, so the input order is reversed before charting.
func StateBarByFires(stats []store.StateStat) Snippet {
	names := make([]string, 0, len(stats))
	data := make([]opts.BarData, 0, len(stats))
	for i := len(stats) - 1; i >= 0; i-- {
		names = append(names, stats[i].State)
		data = append(data, opts.BarData{Value: stats[i].Fires})
	}
	return horizontalBar("Top States by Fire Count", "Fires", colorRed, names, data)
}

// StateBarByArea ranks states by total burned area.
func StateBarByArea(stats []store.StateStat) Snippet {
	names := make([]string, 0, len(stats))
	data := make([]opts.BarData, 0, len(stats))
	for i := len(stats) - 1; i >= 0; i-- {
		names = append(names, stats[i].State)
		data = append(data, opts.BarData{Value: stats[i].TotalSizeKM2})
	}
	return horizontalBar("Top States by Area Burned (km²)", "km²", colorOrange, names, data)
}

// CausePie shows the share of fires per recorded cause.
func CausePie(stats []store.CauseStat) Snippet {
	data := make([]opts.PieData, 0, len(stats))
	for _, s := range stats {
		data = append(data, opts.PieData{Name: s.Cause, Value: s.Fires})
	}
	pie := echarts.NewPie()
	pie.SetGlobalOptions(
		sizeOpts(),
		echarts.WithTitleOpts(opts.Title{Title: "Fires by Cause"}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("Cause", data,
		echarts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)
	return newSnippet(pie.RenderSnippet())
}

// CauseBar ranks causes by fire count, most frequent first.
func CauseBar(stats []store.CauseStat) Snippet {
	names := make([]string, 0, len(stats))
	data := make([]opts.BarData, 0, len(stats))
	for i := len(stats) - 1; i >= 0; i-- {
		names = append(names, stats[i].Cause)
		data = append(data, opts.BarData{Value: stats[i].Fires})
	}
	return horizontalBar("Fire Count by Cause", "Fires", colorPurple, names, data)
}

// Heatmap charts monthly fire counts across years. The X axis holds years,
// the Y axis months, and cell color scales with the count.
func Heatmap(cells []store.HeatmapCell) Snippet {
	yearIndex := make(map[int]int)
	var years []string
	for _, c := range cells {
		if _, ok := yearIndex[c.Year]; !ok {
			yearIndex[c.Year] = len(years)
			years = append(years, strconv.Itoa(c.Year))
		}
	}
	months := make([]string, 12)
	for m := 1; m <= 12; m++ {
		months[m-1] = monthShort(m)
	}

	data := make([]opts.HeatMapData, 0, len(cells))
	var max float32
	for _, c := range cells {
		if c.Month < 1 || c.Month > 12 {
			continue
		}
		data = append(data, opts.HeatMapData{Value: [3]interface{}{yearIndex[c.Year], c.Month - 1, c.Fires}})
		if f := float32(c.Fires); f > max {
			max = f
		}
	}
	if max == 0 {
		max = 1
	}

	hm := echarts.NewHeatMap()
	hm.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "420px"}),
		echarts.WithTitleOpts(opts.Title{Title: "Fires by Year and Month"}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		echarts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      years,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      months,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		echarts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        max,
			InRange:    &opts.VisualMapInRange{Color: heatmapColors},
		}),
	)
	hm.AddSeries("Fires", data)
	return newSnippet(hm.RenderSnippet())
}

func lineChart(title, series, color string, x []string, data []opts.LineData) Snippet {
	line := echarts.NewLine()
	line.SetGlobalOptions(
		sizeOpts(),
		echarts.WithTitleOpts(opts.Title{Title: title}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(x)
	line.AddSeries(series, data,
		echarts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		echarts.WithLineStyleOpts(opts.LineStyle{Color: color}),
		echarts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
	)
	return newSnippet(line.RenderSnippet())
}

func horizontalBar(title, series, color string, names []string, data []opts.BarData) Snippet {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		sizeOpts(),
		echarts.WithTitleOpts(opts.Title{Title: title}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names)
	bar.AddSeries(series, data, echarts.WithItemStyleOpts(opts.ItemStyle{Color: color}))
	bar.XYReversal()
	return newSnippet(bar.RenderSnippet())
}

func yearLabels(stats []store.YearlyStat) []string {
	years := make([]string, 0, len(stats))
	for _, s := range stats {
		years = append(years, strconv.Itoa(s.Year))
	}
	return years
}

func monthShort(m int) string {
	if m < 1 || m > 12 {
		return strconv.Itoa(m)
	}
	return time.Month(m).String()[:3]
}
