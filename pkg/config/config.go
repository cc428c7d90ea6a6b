// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/luxfi/anchor/pkg/constants"
	"github.com/luxfi/anchor/pkg/models"
	"github.com/spf13/viper"
)

// Config reads the project configuration. Priority: flags > env vars > config file > defaults
type Config struct {
	v *viper.Viper
}

// New returns a config backed by the global viper instance, the one cobra flags are bound to
func New() *Config {
	return NewWithViper(viper.GetViper())
}

func NewWithViper(v *viper.Viper) *Config {
	v.SetDefault(constants.ConfigNetwork, constants.LocalhostNetwork)
	v.SetDefault(constants.ConfigArtifacts, constants.DefaultArtifactsDir)
	return &Config{v: v}
}

// Load reads [configFile], or anchor.(yaml|json|toml) from [searchDirs] when it is empty.
// A missing default config file is not an error.
func (c *Config) Load(configFile string, searchDirs ...string) error {
	c.v.SetEnvPrefix(constants.EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	c.v.AutomaticEnv()

	if configFile != "" {
		c.v.SetConfigFile(configFile)
	} else {
		for _, dir := range searchDirs {
			c.v.AddConfigPath(dir)
		}
		c.v.SetConfigName(constants.DefaultConfigFileName)
	}
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed reading config file: %w", err)
	}
	return nil
}

func (c *Config) ConfigFileUsed() string {
	return c.v.ConfigFileUsed()
}

func (c *Config) ConfigFileExists() bool {
	return c.v.ConfigFileUsed() != ""
}

// ArtifactsDir is the compiler output directory
func (c *Config) ArtifactsDir() string {
	return c.v.GetString(constants.ConfigArtifacts)
}

// LogLevel is the display level name, empty when not configured
func (c *Config) LogLevel() string {
	return c.v.GetString(constants.ConfigLogLevel)
}

// SelectedNetwork is the name of the network used when none is given
func (c *Config) SelectedNetwork() string {
	return c.v.GetString(constants.ConfigNetwork)
}

func defaultNetworks() map[string]models.Network {
	return map[string]models.Network{
		constants.LocalhostNetwork: {
			Name:    constants.LocalhostNetwork,
			URL:     constants.LocalhostRPC,
			ChainID: constants.LocalhostChainID,
		},
	}
}

// Networks returns the built in networks overlaid with the configured ones, sorted by name
func (c *Config) Networks() ([]models.Network, error) {
	networks := defaultNetworks()
	sub := c.v.Sub(constants.ConfigNetworks)
	if sub != nil {
		for name := range c.v.GetStringMap(constants.ConfigNetworks) {
			n, err := readNetwork(sub, name, networks[name])
			if err != nil {
				return nil, err
			}
			networks[name] = n
		}
	}
	list := make([]models.Network, 0, len(networks))
	for _, n := range networks {
		list = append(list, n)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list, nil
}

// Network returns the network called [name], or the selected one when [name] is empty
func (c *Config) Network(name string) (models.Network, error) {
	if name == "" {
		name = c.SelectedNetwork()
	}
	networks, err := c.Networks()
	if err != nil {
		return models.Network{}, err
	}
	known := make([]string, 0, len(networks))
	for _, n := range networks {
		if strings.EqualFold(n.Name, name) {
			return n, nil
		}
		known = append(known, n.Name)
	}
	return models.Network{}, fmt.Errorf("%w %q, known networks: %s", constants.ErrUnknownNetwork, name, strings.Join(known, ", "))
}

func readNetwork(v *viper.Viper, name string, base models.Network) (models.Network, error) {
	key := func(k string) string {
		return name + "." + k
	}
	n := base
	n.Name = name
	if v.IsSet(key(constants.NetworkURLKey)) {
		n.URL = v.GetString(key(constants.NetworkURLKey))
	}
	if v.IsSet(key(constants.NetworkChainIDKey)) {
		n.ChainID = v.GetUint64(key(constants.NetworkChainIDKey))
	}
	if v.IsSet(key(constants.NetworkAccountsKey)) {
		n.Accounts = v.GetStringSlice(key(constants.NetworkAccountsKey))
	}
	if v.IsSet(key(constants.NetworkGasLimitKey)) {
		n.GasLimit = v.GetUint64(key(constants.NetworkGasLimitKey))
	}
	if v.IsSet(key(constants.NetworkGasPriceKey)) {
		raw := v.GetString(key(constants.NetworkGasPriceKey))
		gasPrice, ok := new(big.Int).SetString(strings.TrimSpace(raw), 0)
		if !ok {
			return models.Network{}, fmt.Errorf("network %s: invalid %s %q", name, constants.NetworkGasPriceKey, raw)
		}
		n.GasPrice = gasPrice
	}
	if err := n.Validate(); err != nil {
		return models.Network{}, err
	}
	return n, nil
}
