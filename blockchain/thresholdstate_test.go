// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/pkt-cash/sidechaind/btcutil/util"
	"github.com/pkt-cash/sidechaind/chaincfg"
	"github.com/stretchr/testify/require"
)

// TestThresholdStateStringer tests the stringized output for the
// ThresholdState type.
func TestThresholdStateStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ThresholdState
		want string
	}{
		{ThresholdDefined, "ThresholdDefined"},
		{ThresholdStarted, "ThresholdStarted"},
		{ThresholdLockedIn, "ThresholdLockedIn"},
		{ThresholdActive, "ThresholdActive"},
		{ThresholdFailed, "ThresholdFailed"},
		{0xff, "Unknown ThresholdState (255)"},
	}

	// Detect additional threshold states that don't have the stringer added.
	if len(tests)-1 != int(numThresholdsStates) {
		t.Errorf("It appears a threshold statewas added without " +
			"adding an associated stringer test")
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

func regtest(t *testing.T) *chaincfg.Params {
	p, err := chaincfg.Lookup("regtest")
	require.Nil(t, err)
	return p
}

// syntheticDeployment starts at 100, times out at 200 and locks in with 10
// of 10 signals.
func syntheticDeployment() *chaincfg.Deployment {
	return &chaincfg.Deployment{
		Name:      "synthetic",
		Bit:       5,
		StartTime: 100,
		Timeout:   200,
		Threshold: 10,
		Window:    10,
	}
}

func windows(obs ...WindowObservation) []WindowObservation {
	return obs
}

// TestDeploymentStateTransitions walks the synthetic deployment through
// every path of the state machine.
func TestDeploymentStateTransitions(t *testing.T) {
	t.Parallel()

	p := regtest(t)
	d := syntheticDeployment()

	tests := []struct {
		name    string
		history []WindowObservation
		want    ThresholdState
	}{
		{
			name: "no windows",
			want: ThresholdDefined,
		},
		{
			name:    "before start",
			history: windows(WindowObservation{50, 10}),
			want:    ThresholdDefined,
		},
		{
			name:    "signals while defined are ignored",
			history: windows(WindowObservation{100, 10}),
			want:    ThresholdStarted,
		},
		{
			name: "below threshold stays started",
			history: windows(
				WindowObservation{150, 3},
				WindowObservation{160, 9},
			),
			want: ThresholdStarted,
		},
		{
			name: "started then failed",
			history: windows(
				WindowObservation{150, 3},
				WindowObservation{250, 3},
			),
			want: ThresholdFailed,
		},
		{
			name: "timeout checked before threshold",
			history: windows(
				WindowObservation{150, 3},
				WindowObservation{201, 10},
			),
			want: ThresholdFailed,
		},
		{
			name: "median equal to timeout is not expired",
			history: windows(
				WindowObservation{150, 3},
				WindowObservation{200, 10},
			),
			want: ThresholdLockedIn,
		},
		{
			name: "locked in",
			history: windows(
				WindowObservation{150, 0},
				WindowObservation{160, 10},
			),
			want: ThresholdLockedIn,
		},
		{
			name: "active one window after lock in",
			history: windows(
				WindowObservation{150, 0},
				WindowObservation{160, 10},
				WindowObservation{170, 0},
			),
			want: ThresholdActive,
		},
		{
			name: "active survives timeout",
			history: windows(
				WindowObservation{150, 0},
				WindowObservation{160, 10},
				WindowObservation{250, 0},
				WindowObservation{350, 0},
			),
			want: ThresholdActive,
		},
		{
			name: "locked in becomes active even after timeout",
			history: windows(
				WindowObservation{150, 0},
				WindowObservation{160, 10},
				WindowObservation{500, 0},
			),
			want: ThresholdActive,
		},
		{
			name:    "expired before starting",
			history: windows(WindowObservation{201, 0}),
			want:    ThresholdFailed,
		},
		{
			name: "failed is terminal",
			history: windows(
				WindowObservation{250, 10},
				WindowObservation{260, 10},
			),
			want: ThresholdFailed,
		},
	}

	for i, test := range tests {
		got, err := DeploymentState(p, d, test.history)
		require.Nil(t, err, test.name)
		if got != test.want {
			t.Errorf("DeploymentState #%d (%s): got %v want %v", i,
				test.name, got, test.want)
		}
	}
}

// TestDeploymentStateFailurePath feeds several windows below the threshold
// followed by an expired window.
func TestDeploymentStateFailurePath(t *testing.T) {
	t.Parallel()

	p := regtest(t)
	d := syntheticDeployment()

	history := windows(
		WindowObservation{150, 3},
		WindowObservation{150, 3},
		WindowObservation{150, 3},
	)
	state, err := DeploymentState(p, d, history)
	require.Nil(t, err)
	require.Equal(t, ThresholdStarted, state)

	history = append(history, WindowObservation{250, 3})
	state, err = DeploymentState(p, d, history)
	require.Nil(t, err)
	require.Equal(t, ThresholdFailed, state)
}

// TestForcedDeployment ensures forced deployments activate once started and
// never fail.
func TestForcedDeployment(t *testing.T) {
	t.Parallel()

	p := regtest(t)
	csv, ok := p.Deployment("csv")
	require.True(t, ok)
	require.True(t, csv.Force)

	for _, median := range []int64{0, 1, 1624147757, chaincfg.TimeoutNever + 1} {
		state, err := DeploymentState(p, csv, windows(WindowObservation{median, 0}))
		require.Nil(t, err)
		require.Equal(t, ThresholdActive, state, "median %d", median)
	}

	forced := syntheticDeployment()
	forced.Force = true

	state, err := DeploymentState(p, forced, windows(WindowObservation{99, 10}))
	require.Nil(t, err)
	require.Equal(t, ThresholdDefined, state)

	state, err = DeploymentState(p, forced, windows(
		WindowObservation{99, 0},
		WindowObservation{1000, 0},
	))
	require.Nil(t, err)
	require.Equal(t, ThresholdActive, state)

	active, err := IsDeploymentActive(p, "testdummy", windows(WindowObservation{0, 0}))
	require.Nil(t, err)
	require.True(t, active)
}

// TestRequiredDeploymentFailed ensures a failed required deployment is
// reported along with its state.
func TestRequiredDeploymentFailed(t *testing.T) {
	t.Parallel()

	p := regtest(t)
	d := syntheticDeployment()
	d.Required = true

	state, err := DeploymentState(p, d, windows(WindowObservation{250, 0}))
	require.Equal(t, ThresholdFailed, state)
	util.CheckError(t, "DeploymentState", err, ErrRequiredDeploymentFailed)

	state, err = DeploymentState(p, d, windows(WindowObservation{150, 10}, WindowObservation{160, 10}))
	require.Nil(t, err)
	require.Equal(t, ThresholdLockedIn, state)

	mainNet, err := chaincfg.Lookup("main")
	require.Nil(t, err)
	history := windows(WindowObservation{1479168000, 0}, WindowObservation{1600000000, 0})
	segwit, _ := mainNet.Deployment("segwit")
	state, err = DeploymentState(mainNet, segwit, history)
	require.Equal(t, ThresholdFailed, state)
	util.CheckError(t, "DeploymentState", err, ErrRequiredDeploymentFailed)

	active, err := IsDeploymentActive(mainNet, "segwit", history)
	require.False(t, active)
	util.CheckError(t, "IsDeploymentActive", err, ErrRequiredDeploymentFailed)
}

// TestInvalidObservation ensures impossible histories are rejected.
func TestInvalidObservation(t *testing.T) {
	t.Parallel()

	p := regtest(t)
	d := syntheticDeployment()

	_, err := DeploymentState(p, d, windows(WindowObservation{150, 11}))
	util.CheckError(t, "too many signals", err, ErrInvalidObservation)

	_, err = DeploymentState(p, d, windows(
		WindowObservation{150, 0},
		WindowObservation{140, 0},
	))
	util.CheckError(t, "time goes backwards", err, ErrInvalidObservation)

	// The profile window applies when the deployment has none.
	segwit, _ := p.Deployment("segwit")
	_, err = DeploymentState(p, segwit, windows(WindowObservation{0, 144}))
	require.Nil(t, err)
	_, err = DeploymentState(p, segwit, windows(WindowObservation{0, 145}))
	util.CheckError(t, "segwit", err, ErrInvalidObservation)
}

// TestDeploymentStateDeterministic ensures repeated evaluation of the same
// history gives the same result and leaves the history untouched.
func TestDeploymentStateDeterministic(t *testing.T) {
	t.Parallel()

	p := regtest(t)
	d := syntheticDeployment()
	history := windows(
		WindowObservation{150, 0},
		WindowObservation{160, 10},
		WindowObservation{170, 0},
	)
	saved := append([]WindowObservation{}, history...)

	first, err := DeploymentState(p, d, history)
	require.Nil(t, err)
	for i := 0; i < 10; i++ {
		again, err := DeploymentState(p, d, history)
		require.Nil(t, err)
		require.Equal(t, first, again)
	}
	require.Equal(t, saved, history)

	// Every prefix of the history is evaluated on its own.
	want := []ThresholdState{ThresholdDefined, ThresholdStarted,
		ThresholdLockedIn, ThresholdActive}
	for n := 0; n <= len(history); n++ {
		state, err := DeploymentState(p, d, history[:n])
		require.Nil(t, err)
		require.Equal(t, want[n], state, "prefix %d", n)
	}
}

// TestDeploymentStates evaluates every regtest deployment at once.
func TestDeploymentStates(t *testing.T) {
	t.Parallel()

	p := regtest(t)
	statuses, err := DeploymentStates(p, map[string][]WindowObservation{
		"csv":    windows(WindowObservation{10, 0}),
		"segwit": windows(WindowObservation{10, 0}, WindowObservation{20, 144}),
	})
	require.Nil(t, err)

	var names []string
	states := make(map[string]ThresholdState)
	for _, s := range statuses {
		names = append(names, s.Deployment.Name)
		states[s.Deployment.Name] = s.State
	}
	require.Equal(t, []string{"csv", "segwit", "segsignal", "testdummy"}, names)
	require.Equal(t, ThresholdActive, states["csv"])
	require.Equal(t, ThresholdLockedIn, states["segwit"])
	require.Equal(t, ThresholdDefined, states["segsignal"])
	require.Equal(t, ThresholdDefined, states["testdummy"])

	_, err = DeploymentStates(p, map[string][]WindowObservation{
		"taproot": windows(WindowObservation{10, 0}),
	})
	require.NotNil(t, err)
}

// TestDeploymentStatesRequiredFailed ensures every state is still returned
// when a required deployment failed.
func TestDeploymentStatesRequiredFailed(t *testing.T) {
	t.Parallel()

	p, err := chaincfg.Lookup("main")
	require.Nil(t, err)

	// Segwit on main times out at 1510704000.
	statuses, err := DeploymentStates(p, map[string][]WindowObservation{
		"segwit": windows(WindowObservation{1479168000, 0},
			WindowObservation{1510704001, 0}),
	})
	util.CheckError(t, "DeploymentStates", err, ErrRequiredDeploymentFailed)
	require.Len(t, statuses, 4)
	require.Equal(t, ThresholdFailed, statuses[1].State)
}

// TestWindowIndex tests mapping heights to windows.
func TestWindowIndex(t *testing.T) {
	t.Parallel()

	p := regtest(t)
	segwit, _ := p.Deployment("segwit")
	segsignal, _ := p.Deployment("segsignal")

	// A profile which never went through validation.
	unchecked := p.Clone()
	unchecked.MinerConfirmationWindow = 0

	tests := []struct {
		d      *chaincfg.Deployment
		height int32
		want   int32
	}{
		{segwit, -1, -1},
		{segwit, 0, 0},
		{segwit, 143, 0},
		{segwit, 144, 1},
		{segsignal, 335, 0},
		{segsignal, 336, 1},
		{segsignal, 1000, 2},
		{nil, 10, -1},
	}
	for i, test := range tests {
		if got := WindowIndex(p, test.d, test.height); got != test.want {
			t.Errorf("WindowIndex #%d: got %d want %d", i, got, test.want)
		}
	}

	noWindow := &chaincfg.Deployment{Name: "nowindow", Threshold: -1, Window: -1}
	require.Equal(t, int32(-1), WindowIndex(unchecked, noWindow, 10))
	require.Equal(t, int32(-1), WindowIndex(p, &chaincfg.Deployment{Window: 0}, 10))
}
