package botvac

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gatherValue(t *testing.T, families []*dto.MetricFamily, name string) float64 {
	t.Helper()
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		metrics := family.GetMetric()
		if len(metrics) != 1 {
			t.Fatalf("%s: expected one series, got %d", name, len(metrics))
		}
		return metrics[0].GetGauge().GetValue()
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestMetricsCollector(t *testing.T) {
	robot, nucleo := newTestRobot(t, "basic-1")

	registry := prometheus.NewPedanticRegistry()
	registry.MustRegister(NewMetricsCollector(robot))

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if got := gatherValue(t, families, "botvac_scrape_success"); got != 1 {
		t.Fatalf("expected scrape success 1, got %v", got)
	}
	if got := gatherValue(t, families, "botvac_battery_charge_percent"); got != 98 {
		t.Fatalf("expected charge 98, got %v", got)
	}
	if got := gatherValue(t, families, "botvac_docked"); got != 1 {
		t.Fatalf("expected docked 1, got %v", got)
	}
	if got := gatherValue(t, families, "botvac_charging"); got != 0 {
		t.Fatalf("expected charging 0, got %v", got)
	}
	if got := gatherValue(t, families, "botvac_schedule_enabled"); got != 1 {
		t.Fatalf("expected schedule enabled 1, got %v", got)
	}

	// Labels come from the robot identity and the state document.
	for _, family := range families {
		if family.GetName() != "botvac_battery_charge_percent" {
			continue
		}
		labels := map[string]string{}
		for _, pair := range family.GetMetric()[0].GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		if labels["serial"] != nucleo.serial || labels["name"] != "upstairs" || labels["model"] != "BotVacConnected" {
			t.Fatalf("unexpected labels: %v", labels)
		}
	}
}

func TestMetricsCollectorScrapeFailure(t *testing.T) {
	robot, nucleo := newTestRobot(t, "basic-1")
	nucleo.failStatus = 500
	nucleo.failBody = "boom"

	registry := prometheus.NewPedanticRegistry()
	registry.MustRegister(NewMetricsCollector(robot))

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if got := gatherValue(t, families, "botvac_scrape_success"); got != 0 {
		t.Fatalf("expected scrape success 0, got %v", got)
	}
}
