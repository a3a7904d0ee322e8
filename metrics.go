package botvac

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector exposes robot state as Prometheus gauges. Each scrape
// performs one getRobotState round trip; there is no background refresh.
// Hosts register it on their own registry.
type MetricsCollector struct {
	robot *Robot

	scrapeSuccess prometheus.Gauge
	lastSuccess   prometheus.Gauge

	charge          *prometheus.GaugeVec
	docked          *prometheus.GaugeVec
	charging        *prometheus.GaugeVec
	scheduleEnabled *prometheus.GaugeVec
	stateCode       *prometheus.GaugeVec
	actionCode      *prometheus.GaugeVec
}

// NewMetricsCollector builds a collector for one robot.
func NewMetricsCollector(robot *Robot) *MetricsCollector {
	labels := []string{"serial", "name", "model"}
	return &MetricsCollector{
		robot: robot,
		scrapeSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "botvac_scrape_success",
			Help: "Last scrape success (1=ok, 0=error)",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "botvac_last_success_timestamp_seconds",
			Help: "Last successful scrape timestamp (epoch seconds)",
		}),
		charge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "botvac_battery_charge_percent",
			Help: "Battery charge level (percent)",
		}, labels),
		docked: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "botvac_docked",
			Help: "Robot is on its base (1=docked)",
		}, labels),
		charging: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "botvac_charging",
			Help: "Robot is charging (1=charging)",
		}, labels),
		scheduleEnabled: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "botvac_schedule_enabled",
			Help: "Cleaning schedule enabled (1=enabled)",
		}, labels),
		stateCode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "botvac_state_code",
			Help: "Robot state code as reported by getRobotState",
		}, labels),
		actionCode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "botvac_action_code",
			Help: "Robot action code as reported by getRobotState",
		}, labels),
	}
}

func (c *MetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	c.scrapeSuccess.Describe(ch)
	c.lastSuccess.Describe(ch)
	c.charge.Describe(ch)
	c.docked.Describe(ch)
	c.charging.Describe(ch)
	c.scheduleEnabled.Describe(ch)
	c.stateCode.Describe(ch)
	c.actionCode.Describe(ch)
}

func (c *MetricsCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if c.robot == nil {
		c.scrapeSuccess.Set(0)
		c.collectAll(ch)
		return
	}

	state, err := c.robot.GetRobotState(ctx)
	if err != nil {
		c.scrapeSuccess.Set(0)
		c.collectAll(ch)
		return
	}

	labels := prometheus.Labels{
		"serial": c.robot.Serial(),
		"name":   c.robot.Name(),
		"model":  state.Meta.ModelName,
	}
	c.charge.With(labels).Set(float64(state.Details.Charge))
	c.docked.With(labels).Set(boolGauge(state.Details.IsDocked))
	c.charging.With(labels).Set(boolGauge(state.Details.IsCharging))
	c.scheduleEnabled.With(labels).Set(boolGauge(state.Details.IsScheduleEnabled))
	c.stateCode.With(labels).Set(float64(state.State))
	c.actionCode.With(labels).Set(float64(state.Action))

	c.scrapeSuccess.Set(1)
	c.lastSuccess.Set(float64(time.Now().Unix()))

	c.collectAll(ch)
}

func (c *MetricsCollector) collectAll(ch chan<- prometheus.Metric) {
	c.scrapeSuccess.Collect(ch)
	c.lastSuccess.Collect(ch)
	c.charge.Collect(ch)
	c.docked.Collect(ch)
	c.charging.Collect(ch)
	c.scheduleEnabled.Collect(ch)
	c.stateCode.Collect(ch)
	c.actionCode.Collect(ch)
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
