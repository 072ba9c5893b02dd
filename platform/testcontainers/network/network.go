package network

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

const projectLabel = "project"

// Network is a bridge network shared by the containers of one test suite.
type Network struct {
	network *testcontainers.DockerNetwork
}

func NewNetwork(ctx context.Context, project string) (*Network, error) {
	net, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{projectLabel: project}),
	)
	if err != nil {
		return nil, fmt.Errorf("create network for %s: %w", project, err)
	}

	return &Network{network: net}, nil
}

func (n *Network) Name() string { return n.network.Name }

func (n *Network) Remove(ctx context.Context) error {
	if err := n.network.Remove(ctx); err != nil {
		return fmt.Errorf("remove network %s: %w", n.network.Name, err)
	}
	return nil
}
