package execution

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/sirupsen/logrus"

	"github.com/0xDegenDeveloper/ui-clone/ethtypes"
)

var (
	ErrInvalidVaultAddress = errors.New("invalid vault address")
	ErrClientNotReady      = errors.New("execution client not initialized")
)

// VaultClient reads vault contract state from an execution node.
type VaultClient struct {
	name      string
	endpoint  string
	headers   map[string]string
	logger    logrus.FieldLogger
	rpcClient *rpc.Client
	ethClient *ethclient.Client
}

// NewVaultClient is used to create a new vault client, Initialize must be called before use.
func NewVaultClient(name, endpoint string, headers map[string]string, logger logrus.FieldLogger) *VaultClient {
	return &VaultClient{
		name:     name,
		endpoint: endpoint,
		headers:  headers,
		logger:   logger.WithField("client", name),
	}
}

// NewVaultClientWithRPC wraps an already connected rpc client.
func NewVaultClientWithRPC(name string, rpcClient *rpc.Client, logger logrus.FieldLogger) *VaultClient {
	return &VaultClient{
		name:      name,
		logger:    logger.WithField("client", name),
		rpcClient: rpcClient,
		ethClient: ethclient.NewClient(rpcClient),
	}
}

func (vc *VaultClient) Initialize(ctx context.Context) error {
	if vc.ethClient != nil {
		return nil
	}

	rpcClient, err := rpc.DialContext(ctx, vc.endpoint)
	if err != nil {
		return fmt.Errorf("could not connect to %v: %w", vc.name, err)
	}

	for hKey, hVal := range vc.headers {
		rpcClient.SetHeader(hKey, hVal)
	}

	vc.rpcClient = rpcClient
	vc.ethClient = ethclient.NewClient(rpcClient)

	vc.logger.Debugf("connected to execution endpoint")
	return nil
}

func (vc *VaultClient) Close() {
	if vc.rpcClient != nil {
		vc.rpcClient.Close()
	}
}

func (vc *VaultClient) GetName() string {
	return vc.name
}

// ReadVaultType calls get_vault_type() on the vault contract and decodes the returned enum.
func (vc *VaultClient) ReadVaultType(ctx context.Context, address string) (*ethtypes.VaultType, error) {
	if vc.ethClient == nil {
		return nil, ErrClientNotReady
	}
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVaultAddress, address)
	}

	contractAddr := common.HexToAddress(address)
	callData, err := ethtypes.VaultABI.Pack(ethtypes.VaultTypeMethod)
	if err != nil {
		return nil, fmt.Errorf("could not pack %v call: %w", ethtypes.VaultTypeMethod, err)
	}

	msg := ethereum.CallMsg{
		To:   &contractAddr,
		Data: callData,
	}

	result, err := vc.ethClient.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("%v call failed: %w", ethtypes.VaultTypeMethod, err)
	}

	return ethtypes.UnpackVaultType(result)
}
