// Package config loads the tunopen configuration from the environment.
package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Env holds the defaults of the tunopen command line flags.
type Env struct {
	Name        string `env:"TUNOPEN_NAME"`
	Address     string `env:"TUNOPEN_ADDRESS,default=fddf:face:face::5555/64"`
	Pings       int    `env:"TUNOPEN_PINGS,default=3"`
	LogLevel    string `env:"TUNOPEN_LOG_LEVEL,default=info"`
	Diagnostics bool   `env:"TUNOPEN_DIAGNOSTICS,default=false"`
}

type envKey struct{}

// LoadEnv loads the Env from the process environment and stores it in the returned context.
func LoadEnv(ctx context.Context) (context.Context, error) {
	return LoadEnvWith(ctx, envconfig.OsLookuper())
}

// LoadEnvWith loads the Env using the given lookuper and stores it in the returned context.
func LoadEnvWith(ctx context.Context, lookuper envconfig.Lookuper) (context.Context, error) {
	var env Env
	if err := envconfig.ProcessWith(ctx, &env, lookuper); err != nil {
		return ctx, err
	}
	return WithEnv(ctx, &env), nil
}

func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// GetEnv returns the Env stored in the context, or nil.
func GetEnv(ctx context.Context) *Env {
	env, ok := ctx.Value(envKey{}).(*Env)
	if !ok {
		return nil
	}
	return env
}
