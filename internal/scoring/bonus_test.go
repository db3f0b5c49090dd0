package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/compat-scorer/internal/types"
)

func TestEvaluateBonus_DefaultPolicy(t *testing.T) {
	bonus := EvaluateBonus(
		types.RequirementTally{Matched: 2, Total: 3},
		types.RequirementTally{Matched: 1, Total: 2},
		DefaultBonusPolicy(),
	)

	// +2 per matched critical, +1 per matched preferred, -2 per missed critical
	assert.Equal(t, 3.0, bonus.Points)
	assert.Equal(t, 2, bonus.CriticalMatched)
	assert.Equal(t, 3, bonus.CriticalTotal)
	assert.Equal(t, 1, bonus.PreferredMatched)
	assert.Equal(t, 2, bonus.PreferredTotal)
}

func TestEvaluateBonus_AllCriticalsMissed(t *testing.T) {
	bonus := EvaluateBonus(
		types.RequirementTally{Matched: 0, Total: 4},
		types.RequirementTally{},
		DefaultBonusPolicy(),
	)

	assert.Equal(t, -8.0, bonus.Points)
}

func TestEvaluateBonus_ZeroTallies(t *testing.T) {
	bonus := EvaluateBonus(types.RequirementTally{}, types.RequirementTally{}, DefaultBonusPolicy())

	assert.Equal(t, 0.0, bonus.Points)
}

func TestEvaluateBonus_MatchedAboveTotalClampsMiss(t *testing.T) {
	bonus := EvaluateBonus(
		types.RequirementTally{Matched: 5, Total: 3},
		types.RequirementTally{},
		DefaultBonusPolicy(),
	)

	// inconsistent tally: no penalty is charged for a negative miss count
	assert.Equal(t, 10.0, bonus.Points)
}

func TestEvaluateBonus_NilPenaltyPolicy(t *testing.T) {
	policy := BonusPolicy{CriticalMatchPoints: 2, PreferredMatchPoints: 1}

	bonus := EvaluateBonus(
		types.RequirementTally{Matched: 1, Total: 3},
		types.RequirementTally{},
		policy,
	)

	assert.Equal(t, 2.0, bonus.Points)
}

func TestEvaluateBonus_ConfigurableIncrements(t *testing.T) {
	policy := BonusPolicy{
		CriticalMatchPoints:  5,
		PreferredMatchPoints: 0.5,
		Penalty:              FlatPerMissPenalty(1),
	}

	bonus := EvaluateBonus(
		types.RequirementTally{Matched: 2, Total: 3},
		types.RequirementTally{Matched: 4, Total: 4},
		policy,
	)

	// 2*5 + 4*0.5 - 1*1
	assert.Equal(t, 11.0, bonus.Points)
}

func TestFlatPerMissPenalty_PerItem(t *testing.T) {
	penalty := FlatPerMissPenalty(10)

	assert.Equal(t, 0.0, penalty(0))
	assert.Equal(t, 10.0, penalty(1))
	assert.Equal(t, 30.0, penalty(3))
}

func TestFlatPerMissPenalty_NegativeMissCount(t *testing.T) {
	penalty := FlatPerMissPenalty(10)

	assert.Equal(t, 0.0, penalty(-2))
}
