package commands

import (
	"context"
	"fmt"
	"strconv"

	"WishKeeper/internal/cli/bootstrap"
	"WishKeeper/internal/config"
)

type editCmd struct{}

func (editCmd) Name() string { return "edit" }
func (editCmd) Description() string {
	return "Изменить название, ссылку и цену позиции"
}
func (editCmd) Usage() string { return "edit <id> <name> <link> <price>" }

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
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

	it, err := svc.Edit(id, args[1], args[2], args[3])
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	fmt.Fprintf(Out, "  id:    %d\n", it.ID)
	fmt.Fprintf(Out, "  name:  %s\n", it.Name)
	fmt.Fprintf(Out, "  link:  %s\n", it.Link)
	fmt.Fprintf(Out, "  price: %s\n", it.Price)
	return nil
}

func init() { RegisterCmd(editCmd{}) }
