package commands

import (
	"context"
	"fmt"
	"strconv"

	"WishKeeper/internal/cli/bootstrap"
	"WishKeeper/internal/config"
)

type buyCmd struct{}

func (buyCmd) Name() string { return "buy" }
func (buyCmd) Description() string {
	return "Переключить отметку «куплено»"
}
func (buyCmd) Usage() string { return "buy <id>" }

func (buyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenWishlist(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer done()

	it, err := svc.ToggleBought(id)
	if err != nil {
		return err
	}
	if it.Bought {
		fmt.Fprintf(Out, "Куплено: %s\n", it.Name)
	} else {
		fmt.Fprintf(Out, "Снова в списке: %s\n", it.Name)
	}
	return nil
}

func init() { RegisterCmd(buyCmd{}) }
