package commands

import (
	"context"
	"fmt"

	"WishKeeper/internal/cli/bootstrap"
	"WishKeeper/internal/config"
)

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Добавить позицию в вишлист"
}
func (addCmd) Usage() string { return "add <name> <link> <price>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenWishlist(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer done()

	it, err := svc.Add(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	// done() дольёт отложенный снимок в хранилище
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:    %d\n", it.ID)
	fmt.Fprintf(Out, "  name:  %s\n", it.Name)
	fmt.Fprintf(Out, "  link:  %s\n", it.Link)
	fmt.Fprintf(Out, "  price: %s\n", it.Price)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
