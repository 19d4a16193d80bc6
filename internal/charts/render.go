package charts

import (
	"bytes"
	"fmt"
	"io"

	gocharts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	LightTheme = types.ThemeWesteros
	DarkTheme  = types.ThemeChalk

	defaultHeight = "320px"
)

// ThemeFor picks the chart theme matching the panel's dark-mode flag.
func ThemeFor(dark bool) string {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

// Renderer turns a Definition into self-contained go-echarts HTML.
type Renderer struct {
	cache      RenderCache
	assetsHost string
	height     string
}

type RendererOption func(*Renderer)

func WithCache(cache RenderCache) RendererOption {
	return func(r *Renderer) { r.cache = cache }
}

// WithAssetsHost points the echarts script tags at another host.
func WithAssetsHost(host string) RendererOption {
	return func(r *Renderer) { r.assetsHost = host }
}

func WithHeight(height string) RendererOption {
	return func(r *Renderer) { r.height = height }
}

func NewRenderer(options ...RendererOption) *Renderer {
	r := &Renderer{height: defaultHeight}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *Renderer) Render(def Definition, theme string) (string, error) {
	if len(def.Labels) != len(def.Values) {
		return "", fmt.Errorf("chart %s: %d labels for %d values", def.ID, len(def.Labels), len(def.Values))
	}
	render := func() (string, error) { return r.render(def, theme) }
	if r.cache == nil {
		return render()
	}
	return r.cache.GetOrRender(def.ID+":"+theme, render)
}

func (r *Renderer) render(def Definition, theme string) (string, error) {
	global := r.globalOptions(def, theme)
	switch def.Kind {
	case KindLine:
		line := gocharts.NewLine()
		line.SetGlobalOptions(global...)
		line.SetXAxis(def.Labels)
		line.AddSeries(def.SeriesName, lineData(def),
			gocharts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			gocharts.WithLineStyleOpts(opts.LineStyle{Color: def.colorAt(0)}),
		)
		return renderChart(line)
	case KindBar:
		bar := gocharts.NewBar()
		bar.SetGlobalOptions(global...)
		bar.SetXAxis(def.Labels)
		bar.AddSeries(def.SeriesName, barData(def))
		return renderChart(bar)
	case KindPie, KindDoughnut:
		pie := gocharts.NewPie()
		pie.SetGlobalOptions(global...)
		var pieOpts opts.PieChart
		if def.Kind == KindDoughnut {
			pieOpts.Radius = []string{"40%", "70%"}
		}
		pie.AddSeries(def.SeriesName, pieData(def), gocharts.WithPieChartOpts(pieOpts))
		return renderChart(pie)
	case KindRadar:
		radar := gocharts.NewRadar()
		global = append(global, gocharts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: indicators(def),
		}))
		radar.SetGlobalOptions(global...)
		radar.AddSeries(def.SeriesName, []opts.RadarData{{Name: def.SeriesName, Value: def.Values}},
			gocharts.WithItemStyleOpts(opts.ItemStyle{Color: def.colorAt(0)}),
		)
		return renderChart(radar)
	default:
		return "", fmt.Errorf("unsupported chart kind: %s", def.Kind)
	}
}

func (r *Renderer) globalOptions(def Definition, theme string) []gocharts.GlobalOpts {
	initOpts := opts.Initialization{
		PageTitle: def.Title,
		ChartID:   def.ID,
		Theme:     theme,
		Width:     "100%",
		Height:    r.height,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []gocharts.GlobalOpts{
		gocharts.WithInitializationOpts(initOpts),
		gocharts.WithLegendOpts(opts.Legend{Show: opts.Bool(def.ShowLegend)}),
		gocharts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func lineData(def Definition) []opts.LineData {
	data := make([]opts.LineData, len(def.Values))
	for i, v := range def.Values {
		data[i] = opts.LineData{Name: def.Labels[i], Value: v}
	}
	return data
}

func barData(def Definition) []opts.BarData {
	data := make([]opts.BarData, len(def.Values))
	for i, v := range def.Values {
		data[i] = opts.BarData{Name: def.Labels[i], Value: v}
		if c := def.colorAt(i); c != "" {
			data[i].ItemStyle = &opts.ItemStyle{Color: c}
		}
	}
	return data
}

func pieData(def Definition) []opts.PieData {
	data := make([]opts.PieData, len(def.Values))
	for i, v := range def.Values {
		data[i] = opts.PieData{Name: def.Labels[i], Value: v}
		if c := def.colorAt(i); c != "" {
			data[i].ItemStyle = &opts.ItemStyle{Color: c}
		}
	}
	return data
}

func indicators(def Definition) []*opts.Indicator {
	out := make([]*opts.Indicator, len(def.Labels))
	for i, label := range def.Labels {
		out[i] = &opts.Indicator{Name: label, Max: 100}
	}
	return out
}
