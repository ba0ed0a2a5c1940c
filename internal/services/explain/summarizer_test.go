package explain

import (
	"reflect"
	"testing"

	"SquadPulse/internal/domain/models"
)

func TestDriversNoneFired(t *testing.T) {
	s := NewSummarizer()
	got := s.Drivers(models.PlayerFeatures{})
	if !reflect.DeepEqual(got, []string{NoDrivers}) {
		t.Fatalf("expected sentinel, got %v", got)
	}
}

func TestDriversFixedOrder(t *testing.T) {
	s := NewSummarizer()
	// soreness flag barely fires, high-speed fires with a large margin;
	// declaration order must still win over magnitude
	f := models.PlayerFeatures{SorenessZ: 1.01}
	f.HighSpeedDistanceM = 1499
	got := s.Drivers(f)
	want := []string{DriverSoreness, DriverHighSpeed}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDriversAllFired(t *testing.T) {
	s := NewSummarizer()
	f := models.PlayerFeatures{ACWR: 1.5, FatigueZ: 1.5, SorenessZ: 1.5}
	f.HighSpeedDistanceM = 900
	f.Accelerations = 70
	f.Decelerations = 70
	got := s.Drivers(f)
	want := []string{
		DriverWorkloadSpike,
		DriverFatigue,
		DriverSoreness,
		DriverHighSpeed,
		DriverNeuromuscular,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDriversIndependent(t *testing.T) {
	s := NewSummarizer()
	f := models.PlayerFeatures{ACWR: 1.4}
	got := s.Drivers(f)
	if !reflect.DeepEqual(got, []string{DriverWorkloadSpike}) {
		t.Fatalf("expected single workload flag, got %v", got)
	}
}

func TestDriversBoundaries(t *testing.T) {
	s := NewSummarizer()
	// thresholds are strict: exact values do not fire
	f := models.PlayerFeatures{ACWR: 1.3, FatigueZ: 1, SorenessZ: 1}
	f.HighSpeedDistanceM = 800
	f.Accelerations = 60
	f.Decelerations = 60
	got := s.Drivers(f)
	if !reflect.DeepEqual(got, []string{NoDrivers}) {
		t.Fatalf("boundary values must not fire, got %v", got)
	}
}
