package commands

import (
	"context"
	"fmt"
	"strconv"

	"WishKeeper/internal/cli/bootstrap"
	"WishKeeper/internal/config"
)

type deleteCmd struct{}

func (deleteCmd) Name() string { return "delete" }
func (deleteCmd) Description() string {
	return "Удалить позицию по id"
}
func (deleteCmd) Usage() string { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	if err := svc.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: %d\n", id)
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
