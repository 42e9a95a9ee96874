package weather

import (
	"testing"

	"github.com/farmflow/backend/domain"
)

func TestAlertsForRain(t *testing.T) {
	alerts := AlertsFor(&domain.Weather{Condition: domain.ConditionRainy, Temperature: 20})
	if len(alerts) != 1 || alerts[0].Title != "Heavy Rain Warning" {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
}

func TestAlertsForHeat(t *testing.T) {
	alerts := AlertsFor(&domain.Weather{Condition: domain.ConditionSunny, Temperature: 36})
	if len(alerts) != 1 || alerts[0].Title != "Heat Advisory" {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}

	// 35 exactly is not extreme heat.
	if alerts := AlertsFor(&domain.Weather{Condition: domain.ConditionSunny, Temperature: 35}); len(alerts) != 0 {
		t.Fatalf("35 degrees should not trigger the advisory: %+v", alerts)
	}
}

func TestAlertsForFrost(t *testing.T) {
	alerts := AlertsFor(&domain.Weather{Condition: domain.ConditionCloudy, Temperature: 2})
	if len(alerts) != 1 || alerts[0].Title != "Frost Warning" {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
}

func TestAlertsForStormAndFrostStack(t *testing.T) {
	alerts := AlertsFor(&domain.Weather{Condition: domain.ConditionStormy, Temperature: 1})
	if len(alerts) != 2 {
		t.Fatalf("expected rain and frost alerts, got %+v", alerts)
	}
}

func TestAlertsForCalmConditions(t *testing.T) {
	if alerts := AlertsFor(&domain.Weather{Condition: domain.ConditionSunny, Temperature: 22}); len(alerts) != 0 {
		t.Fatalf("calm conditions should produce no alerts: %+v", alerts)
	}
	if alerts := AlertsFor(nil); alerts != nil {
		t.Fatalf("nil observation should produce no alerts: %+v", alerts)
	}
}
