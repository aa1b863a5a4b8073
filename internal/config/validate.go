package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when redis is enabled")
		}
		if c.Redis.OpTimeout <= 0 {
			return fmt.Errorf("redis.op_timeout must be > 0 (got %v)", c.Redis.OpTimeout)
		}
	}

	if c.Cache.UsersDictTTL <= 0 {
		return fmt.Errorf("cache.users_dict_ttl must be > 0 (got %v)", c.Cache.UsersDictTTL)
	}

	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when kafka is enabled")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
		if c.Kafka.RelayBufferSize < 1 {
			return fmt.Errorf("kafka.relay_buffer_size must be >= 1 (got %d)", c.Kafka.RelayBufferSize)
		}
	}

	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be >= 1 (got %d)", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must not be below default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}

	return nil
}
