package operation

import "testing"

func baseOp() Operation {
	return Operation{
		Name:         "test",
		Strategy:     Roughing,
		ToolNumber:   1,
		ToolDiameter: 0.25,
		ZTop:         0,
		ZBottom:      -1,
		StepDown:     0.1,
		FeedXY:       30,
		FeedZ:        10,
		SafeZ:        0.25,
		RapidZ:       1,
		Roughing:     RoughingParams{StepOverFraction: 0.4},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := baseOp().Validate(); err != nil {
		t.Errorf("expected valid operation, got %v", err)
	}
}

func TestValidateRejectsNonPositiveStepDown(t *testing.T) {
	op := baseOp()
	op.StepDown = 0
	if err := op.Validate(); err == nil {
		t.Error("expected error for zero step-down")
	}
}

func TestValidateRejectsInvertedZRange(t *testing.T) {
	op := baseOp()
	op.ZBottom = 1
	if err := op.Validate(); err == nil {
		t.Error("expected error for z_bottom >= z_top")
	}
}

func TestValidateRejectsLowSafeZ(t *testing.T) {
	op := baseOp()
	op.SafeZ = -0.5
	if err := op.Validate(); err == nil {
		t.Error("expected error for safe_z below z_top")
	}
}

func TestValidateRejectsBadStepOverFraction(t *testing.T) {
	op := baseOp()
	op.Roughing.StepOverFraction = 1.5
	if err := op.Validate(); err == nil {
		t.Error("expected error for step_over_fraction > 1")
	}

	op.Roughing.StepOverFraction = 0
	if err := op.Validate(); err == nil {
		t.Error("expected error for step_over_fraction == 0")
	}
}

func TestStepOverDerivedFromDiameter(t *testing.T) {
	op := baseOp()
	if got, want := op.StepOver(), 0.1; got != want {
		t.Errorf("StepOver() = %v, want %v", got, want)
	}
}

func TestStrategyString(t *testing.T) {
	if Roughing.String() != "roughing" {
		t.Errorf("Roughing.String() = %q", Roughing.String())
	}
	if Finishing.String() != "finishing" {
		t.Errorf("Finishing.String() = %q", Finishing.String())
	}
}
