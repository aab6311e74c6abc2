package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		target *int
		d      time.Duration
		want   Status
	}{
		{nil, 0, StatusNeutral},
		{nil, 12 * time.Hour, StatusNeutral},
		{Hours(0), 0, StatusMet},
		{Hours(1), 3 * time.Hour, StatusMet},
		{Hours(3), time.Hour, StatusUnder},
		{Hours(2), time.Hour, StatusApproaching},
		{Hours(2), time.Hour + 59*time.Minute, StatusApproaching},
		{Hours(2), 2 * time.Hour, StatusMet},
		{Hours(8), 6*time.Hour + 59*time.Minute, StatusUnder},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Classify(tc.target, tc.d), "target=%v d=%s", tc.target, tc.d)
	}
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "neutral", StatusNeutral.String())
	require.Equal(t, "under", StatusUnder.String())
	require.Equal(t, "approaching", StatusApproaching.String())
	require.Equal(t, "met", StatusMet.String())
}

func TestTargetConfigString(t *testing.T) {
	require.Equal(t, "1h / 2h / 3h", TargetConfig{Daily: Hours(1), Weekly: Hours(2), Monthly: Hours(3)}.String())
	require.Equal(t, "8h / - / -", TargetConfig{Daily: Hours(8)}.String())
	require.Equal(t, "", TargetConfig{}.String())
	require.False(t, TargetConfig{}.AnySet())
}

func TestTargetsLookup(t *testing.T) {
	targets := Targets{KeyOf("a"): {Daily: Hours(4)}}
	cfg, ok := targets.Target(KeyOf("a"))
	require.True(t, ok)
	require.Equal(t, 4, *cfg.Daily)

	_, ok = targets.Target(KeyOf("b"))
	require.False(t, ok)
}
