// Package etcdcluster starts embedded etcd clusters for integration tests.
package etcdcluster

import (
	"testing"

	"go.etcd.io/etcd/client/pkg/v3/testutil"
	etcdintegration "go.etcd.io/etcd/tests/v3/framework/integration"
)

// quietTB drops the cluster's log output and forwards everything else.
type quietTB struct {
	testutil.TB
}

var _ testutil.TB = quietTB{} //nolint:exhaustruct

// Quiet wraps tb so that logs written through it are discarded.
func Quiet(tb testutil.TB) testutil.TB {
	return quietTB{TB: tb}
}

func (quietTB) Log(...any) {}

func (quietTB) Logf(string, ...any) {}

// StartCluster starts a single-node cluster that is terminated when the test
// finishes and returns its client endpoints. The test is skipped in short mode.
// Clusters can't be started from parallel tests.
func StartCluster(t *testing.T) []string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping etcd integration test in short mode")
	}

	tb := Quiet(t)

	etcdintegration.BeforeTest(tb, etcdintegration.WithoutGoLeakDetection())

	cluster := etcdintegration.NewCluster(tb, &etcdintegration.ClusterConfig{Size: 1}) //nolint:exhaustruct
	t.Cleanup(func() { cluster.Terminate(tb) })

	return cluster.Client(0).Endpoints()
}
