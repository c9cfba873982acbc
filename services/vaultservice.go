package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/0xDegenDeveloper/ui-clone/clients/execution"
	"github.com/0xDegenDeveloper/ui-clone/types"
	"github.com/0xDegenDeveloper/ui-clone/types/models"
	"github.com/0xDegenDeveloper/ui-clone/utils"
)

// ChainConnection is the transport selection every vault read goes through.
type ChainConnection struct {
	Mode     string
	Endpoint types.EndpointConfig
}

type VaultService struct {
	logger      logrus.FieldLogger
	connection  *ChainConnection
	reader      VaultTypeReader
	metrics     VaultMetricsProvider
	callTimeout time.Duration
	addresses   []string
}

var GlobalVaultService *VaultService

// SelectChainConnection resolves the configured connection mode to an endpoint.
func SelectChainConnection(cfg *types.Config) (*ChainConnection, error) {
	switch cfg.ExecutionApi.Connection {
	case "", utils.ConnectionRpc:
		if len(cfg.ExecutionApi.Endpoints) == 0 {
			return nil, fmt.Errorf("no execution endpoints configured")
		}
		return &ChainConnection{
			Mode:     utils.ConnectionRpc,
			Endpoint: cfg.ExecutionApi.Endpoints[0],
		}, nil
	case utils.ConnectionPublic:
		if cfg.Frontend.PublicRPCUrl == "" {
			return nil, fmt.Errorf("no public rpc url configured")
		}
		return &ChainConnection{
			Mode: utils.ConnectionPublic,
			Endpoint: types.EndpointConfig{
				Name: "public",
				Url:  cfg.Frontend.PublicRPCUrl,
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown connection mode: %v", cfg.ExecutionApi.Connection)
	}
}

// InitVaultService connects the configured chain connection and sets up the global vault service
func InitVaultService(ctx context.Context, logger logrus.FieldLogger) error {
	if GlobalVaultService != nil {
		return nil
	}

	connection, err := SelectChainConnection(utils.Config)
	if err != nil {
		return err
	}

	client := execution.NewVaultClient(connection.Endpoint.Name, connection.Endpoint.Url, connection.Endpoint.Headers, logger.WithField("module", "execution"))
	err = client.Initialize(ctx)
	if err != nil {
		return err
	}

	GlobalVaultService = NewVaultService(
		logger.WithField("module", "vaults"),
		connection,
		client,
		&PlaceholderMetrics{Duration: utils.Config.Vaults.Duration},
		utils.Config.ExecutionApi.CallTimeout,
		utils.Config.Vaults.Addresses,
	)

	logger.WithFields(logrus.Fields{
		"connection": connection.Mode,
		"endpoint":   client.GetName(),
		"vaults":     len(utils.Config.Vaults.Addresses),
	}).Info("vault service initialized")

	return nil
}

func NewVaultService(logger logrus.FieldLogger, connection *ChainConnection, reader VaultTypeReader, metrics VaultMetricsProvider, callTimeout time.Duration, addresses []string) *VaultService {
	return &VaultService{
		logger:      logger,
		connection:  connection,
		reader:      reader,
		metrics:     metrics,
		callTimeout: callTimeout,
		addresses:   addresses,
	}
}

func (vs *VaultService) GetConnection() *ChainConnection {
	return vs.connection
}

func (vs *VaultService) GetVaultAddresses() []string {
	addresses := make([]string, len(vs.addresses))
	copy(addresses, vs.addresses)
	return addresses
}

// NewVaultCard creates a card bound to address, its query cycle starts immediately.
func (vs *VaultService) NewVaultCard(address string) *VaultCard {
	card := NewVaultCard(vs.reader, vs.logger, vs.callTimeout)
	card.SetAddress(address)
	return card
}

// LoadVaultCards starts one card per address and waits until all of them settled or ctx is done.
// The caller owns the returned cards and must close them.
func (vs *VaultService) LoadVaultCards(ctx context.Context, addresses []string) []*VaultCard {
	cards := make([]*VaultCard, len(addresses))
	for idx, address := range addresses {
		cards[idx] = vs.NewVaultCard(address)
	}
	for _, card := range cards {
		card.Wait(ctx)
	}
	return cards
}

func (vs *VaultService) GetVaultMetrics(query *VaultTypeQuery) *models.VaultMetrics {
	return vs.metrics.GetVaultMetrics(query)
}

// BuildCardData renders the current state of card, nil while it is loading or failed.
func (vs *VaultService) BuildCardData(card *VaultCard) *models.VaultCardData {
	query := card.Query()
	if query.Status != VaultTypeStatusSuccess {
		return nil
	}
	return BuildVaultCardData(query, vs.GetVaultMetrics(query))
}

// Close releases the chain connection of the vault service.
func (vs *VaultService) Close() {
	if vs == nil {
		return
	}
	if closer, ok := vs.reader.(interface{ Close() }); ok {
		closer.Close()
	}
}
