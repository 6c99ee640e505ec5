package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTDEE(t *testing.T) {
	// Birthday fixed relative to now so the derived age is exactly 30.
	birthday := time.Now().AddDate(-30, 0, -1)

	// Mifflin-St Jeor, male, 180cm, 80kg, age 30:
	// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780; moderate ×1.55 = 2759.
	tdee, err := CalculateTDEE("male", birthday, 180, 80, "moderate")
	require.NoError(t, err)
	assert.Equal(t, 2759.0, tdee)

	// Female variant subtracts 161 instead of adding 5.
	tdee, err = CalculateTDEE("female", birthday, 165, 60, "light")
	require.NoError(t, err)
	// BMR = 600 + 1031.25 - 150 - 161 = 1320.25; ×1.375 = 1815.34 → 1815
	assert.Equal(t, 1815.0, tdee)
}

func TestCalculateTDEE_UnknownActivityFallsBackToSedentary(t *testing.T) {
	birthday := time.Now().AddDate(-30, 0, -1)

	sedentary, err := CalculateTDEE("male", birthday, 180, 80, "sedentary")
	require.NoError(t, err)
	unknown, err := CalculateTDEE("male", birthday, 180, 80, "couch")
	require.NoError(t, err)
	assert.Equal(t, sedentary, unknown)
}

func TestCalculateTDEE_IncompleteProfile(t *testing.T) {
	_, err := CalculateTDEE("male", time.Time{}, 180, 80, "moderate")
	assert.Error(t, err)

	_, err = CalculateTDEE("male", time.Now().AddDate(-30, 0, -1), 0, 80, "moderate")
	assert.Error(t, err)
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 81)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, bmi, 0.01)
	assert.Equal(t, "Overweight", BMICategory(bmi))

	_, err = CalculateBMI(0, 81)
	assert.Error(t, err)
	_, err = CalculateBMI(300, 81)
	assert.Error(t, err)
}
