package minio

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrEmptyEndpoint)
}

// TestMinioGet verifies objects are downloaded and missing ones map to ErrObjectNotFound.
func TestMinioGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	containerInstance, host, port, err := createMinIOContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	client, err := NewClient(Config{
		Endpoint:        net.JoinHostPort(host, port),
		AccessKeyID:     "minio_admin",
		SecretAccessKey: "minio_admin",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return client.client.MakeBucket(ctx, "exports", minio.MakeBucketOptions{}) == nil
	}, 30*time.Second, 500*time.Millisecond)

	payload := []byte(`[{"restaurant_name":"Pizza Palace","longitude":-73.9857,"latitude":40.7484}]`)
	_, err = client.client.PutObject(ctx, "exports", "locations.json", bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{})
	require.NoError(t, err)

	obs := &recordingObserver{}
	client.WithObserver(obs)

	data, err := client.Get(ctx, "exports", "locations.json")
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	_, err = client.Get(ctx, "exports", "missing.json")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	require.Len(t, obs.ops, 2)
	assert.Equal(t, "minio", obs.ops[0].Component)
	assert.Equal(t, "exports", obs.ops[0].Resource)
	assert.Equal(t, "locations.json", obs.ops[0].SubResource)
	assert.Error(t, obs.ops[1].Error)
}

// createMinIOContainer sets up and starts a MinIO Docker container for testing
func createMinIOContainer(ctx context.Context) (testcontainers.Container, string, string, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, "", "", fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"9000/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "minio/minio:RELEASE.2024-01-16T16-07-38Z",
		Cmd:   []string{"server", "/data"},
		Env: map[string]string{
			"MINIO_ACCESS_KEY": "minio_admin",
			"MINIO_SECRET_KEY": "minio_admin",
		},
		ExposedPorts: []string{
			"9000/tcp",
		},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("9000/tcp").WithStartupTimeout(20*time.Second),
			wait.ForHTTP("/minio/health/ready").WithPort("9000/tcp").WithStartupTimeout(20*time.Second),
		),
	}

	containerInstance, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to start MinIO container: %w", err)
	}

	host, err := containerInstance.Host(ctx)
	if err != nil {
		_ = containerInstance.Terminate(ctx)
		return nil, "", "", fmt.Errorf("failed to get host: %w", err)
	}

	return containerInstance, host, portStr, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer addr.Close()

	return addr.Addr().(*net.TCPAddr).Port, nil
}
