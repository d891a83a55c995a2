package config

import (
	"time"

	"github.com/spf13/viper"
)

// Data groups the data layer configuration.
type Data struct {
	Database *Database
	Redis    *Redis
}

// Database database config struct
type Database struct {
	Master  *DBNode
	Migrate bool
}

// DBNode represents a single database node configuration
type DBNode struct {
	Driver          string
	Source          string
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifeTime time.Duration
}

// Redis redis config struct
type Redis struct {
	Addr         string
	Username     string
	Password     string
	Db           int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	DialTimeout  time.Duration
}

func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		Database: &Database{
			Master: &DBNode{
				Driver:          getStringOrDefault(v, "data.database.master.driver", "sqlite"),
				Source:          getStringOrDefault(v, "data.database.master.source", "file:notes.db?cache=shared&mode=rwc"),
				MaxIdleConn:     v.GetInt("data.database.master.max_idle_conn"),
				MaxOpenConn:     v.GetInt("data.database.master.max_open_conn"),
				ConnMaxLifeTime: v.GetDuration("data.database.master.max_life_time"),
			},
			Migrate: getBoolOrDefault(v, "data.database.migrate", true),
		},
		Redis: &Redis{
			Addr:         v.GetString("data.redis.addr"),
			Username:     v.GetString("data.redis.username"),
			Password:     v.GetString("data.redis.password"),
			Db:           v.GetInt("data.redis.db"),
			ReadTimeout:  v.GetDuration("data.redis.read_timeout"),
			WriteTimeout: v.GetDuration("data.redis.write_timeout"),
			DialTimeout:  v.GetDuration("data.redis.dial_timeout"),
		},
	}
}
