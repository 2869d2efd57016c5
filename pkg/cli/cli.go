// Package cli contains the tunopen command.
package cli

import (
	"context"
	"fmt"
	"net"

	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/tunopen/tunopen/pkg/config"
	"github.com/tunopen/tunopen/pkg/echo"
	"github.com/tunopen/tunopen/pkg/hostcfg"
	"github.com/tunopen/tunopen/pkg/log"
	"github.com/tunopen/tunopen/pkg/tun"
)

const help = `Open a tun device, optionally using name as a hint for the interface name, and
print the name that the OS assigned to it.

Unless --classify is given, the address is added to the interface, the interface
is brought up, and the peer address is pinged. Each ICMPv6 echo request that
arrives on the device is answered until --pings replies have been sent.

With --classify, no configuration is made. Each packet that arrives is classified
as IPv4, IPv6 or unknown and logged until the command is interrupted.

On macOS, name must be on the form utun<N>.`

type options struct {
	address     string
	pings       int
	classify    bool
	logLevel    string
	diagnostics bool
}

// Command returns the tunopen command. Flag defaults are taken from the config.Env of the context.
func Command(ctx context.Context) *cobra.Command {
	env := config.GetEnv(ctx)
	if env == nil {
		env = &config.Env{}
	}
	o := &options{}
	cmd := &cobra.Command{
		Use:  "tunopen [flags] [name]",
		Args: cobra.MaximumNArgs(1),

		Short:         "Open a tun device and answer pings on it",
		Long:          help,
		SilenceErrors: true, // main() will handle it after .ExecuteContext() returns
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hint := env.Name
			if len(args) == 1 {
				hint = args[0]
			}
			return o.run(cmd, hint)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&o.address, "address", env.Address, "address, in CIDR notation, to assign to the device")
	flags.IntVar(&o.pings, "pings", env.Pings, "number of echo replies to send before exiting")
	flags.BoolVar(&o.classify, "classify", false, "don't configure the device, just classify the packets that arrive")
	flags.StringVar(&o.logLevel, "log-level", env.LogLevel, "log level (error, warning, info, debug, or trace)")
	flags.BoolVar(&o.diagnostics, "diagnostics", env.Diagnostics, "log each failing system call")
	return cmd
}

func (o *options) run(cmd *cobra.Command, hint string) error {
	if !o.classify && o.pings <= 0 {
		return fmt.Errorf("--pings must be positive, got %d", o.pings)
	}
	ctx := log.MakeBaseLogger(cmd.Context(), cmd.ErrOrStderr(), o.logLevel)
	if o.diagnostics {
		ctx = tun.WithDiagnostics(ctx, true)
	}

	dev, err := tun.Open(ctx, hint)
	if err != nil {
		return err
	}
	name := dev.Name().String()
	fmt.Fprintf(cmd.OutOrStdout(), "Created tun device %s\n", name)

	responder := &echo.Responder{Framing: tun.Native}
	var peer net.IP
	if !o.classify {
		if peer, err = hostcfg.Peer(o.address); err == nil {
			err = hostcfg.Configure(ctx, name, o.address)
		}
		if err != nil {
			_ = dev.Close()
			return err
		}
		if out, err := hostcfg.Show(ctx, name); err == nil {
			dlog.Debugf(ctx, "configured %s\n%s", name, out)
		} else {
			dlog.Debugf(ctx, "unable to show %s: %v", name, err)
		}
		responder.Replies = o.pings
	}

	g := dgroup.NewGroup(ctx, dgroup.GroupConfig{
		EnableSignalHandling: true,
		ShutdownOnNonError:   true,
	})
	if peer != nil {
		g.Go("ping", func(ctx context.Context) error {
			err := hostcfg.Ping(ctx, peer, o.pings)
			if ctx.Err() != nil {
				// Killed because the responder is done.
				return nil
			}
			return err
		})
	}
	g.Go("responder", func(ctx context.Context) error {
		return responder.Run(ctx, dev)
	})
	g.Go("closer", func(ctx context.Context) error {
		<-ctx.Done()
		dlog.Debugf(ctx, "closing %s", name)
		return dev.Close()
	})
	return g.Wait()
}

