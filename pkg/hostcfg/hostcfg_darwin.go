package hostcfg

import (
	"context"

	"github.com/datawire/dlib/dexec"
)

func addAddress(ctx context.Context, name, cidr string) error {
	args, err := ifconfigAddressArgs(name, cidr)
	if err != nil {
		return err
	}
	return dexec.CommandContext(ctx, "ifconfig", args...).Run()
}

func up(ctx context.Context, name string) error {
	return dexec.CommandContext(ctx, "ifconfig", name, "up").Run()
}

func show(ctx context.Context, name string) (string, error) {
	out, err := dexec.CommandContext(ctx, "ifconfig", name).Output()
	return string(out), err
}
