package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/Jaydccq/mini-ups-sub002/internal/simtest"
	"github.com/Jaydccq/mini-ups-sub002/pkg/fleet"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/worldups"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func pointAtWorld(t *testing.T, world *simtest.FakeWorld) {
	t.Setenv("WORLDSIM_WORLD_HOST", world.Host())
	t.Setenv("WORLDSIM_WORLD_PORT", strconv.Itoa(world.Port()))
	t.Setenv("WORLDSIM_RECONNECT_ENABLED", "false")
	t.Setenv("WORLDSIM_LOG_LEVEL", "error")
}

func TestVersion(t *testing.T) {
	stdout, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", stdout)
}

func TestParsePackages(t *testing.T) {
	packages, err := parsePackages([]string{"42:3:8", "43:-1:9"})
	require.NoError(t, err)
	assert.Equal(t, map[int64]fleet.Location{42: {X: 3, Y: 8}, 43: {X: -1, Y: 9}}, packages)

	_, err = parsePackages([]string{"42:3"})
	assert.Error(t, err)
	_, err = parsePackages([]string{"a:3:8"})
	assert.Error(t, err)
	_, err = parsePackages([]string{"42:3:8", "42:1:1"})
	assert.Error(t, err)
}

func TestPickupRequiresFlags(t *testing.T) {
	_, err := executeCLI(t, "pickup", "--truck", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"warehouse\" not set")
}

func TestPickupAgainstSimulator(t *testing.T) {
	world := simtest.Start(t)
	world.SetWorldID(12)
	world.SetResponder(simtest.AckAll)
	pointAtWorld(t, world)

	fleetPath := filepath.Join(t.TempDir(), "fleet.toml")
	require.NoError(t, os.WriteFile(fleetPath, []byte(`
[[trucks]]
id = 1
x = 2
y = 3
`), 0o600))

	stdout, err := executeCLI(t, "pickup", "--truck", "1", "--warehouse", "4", "--fleet", fleetPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "truck 1 sent to warehouse 4 (world 12")

	connects := world.Connects()
	require.Len(t, connects, 1)
	require.Len(t, connects[0].GetTrucks(), 1)
	assert.True(t, proto.Equal(&worldups.UInitTruck{Id: proto.Int32(1), X: proto.Int32(2), Y: proto.Int32(3)}, connects[0].GetTrucks()[0]))
}

func TestQueryAgainstSimulator(t *testing.T) {
	world := simtest.Start(t)
	world.SetResponder(func(cmd *worldups.UCommands) *worldups.UResponses {
		if len(cmd.GetQueries()) == 0 {
			return nil
		}
		q := cmd.GetQueries()[0]
		return &worldups.UResponses{Truckstatus: []*worldups.UTruck{{
			Truckid: q.Truckid, Status: proto.String("idle"), X: proto.Int32(7), Y: proto.Int32(1), Seqnum: q.Seqnum,
		}}}
	})
	pointAtWorld(t, world)

	stdout, err := executeCLI(t, "query", "--truck", "3", "--world", "5")
	require.NoError(t, err)
	assert.Equal(t, "truck 3 at (7,1): idle\n", stdout)

	connects := world.Connects()
	require.Len(t, connects, 1)
	require.NotNil(t, connects[0].Worldid)
	assert.Equal(t, int64(5), connects[0].GetWorldid())
}
