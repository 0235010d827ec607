package commands

import (
	"context"
	"fmt"

	"WishKeeper/internal/cli/bootstrap"
	"WishKeeper/internal/config"
	"WishKeeper/internal/model"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать весь вишлист"
}
func (itemsCmd) Usage() string { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenWishlist(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer done()

	list := svc.Items()
	if len(list) == 0 {
		fmt.Fprintln(Out, "Список пуст")
		return nil
	}
	var pending, bought []model.WishlistItem
	for _, it := range list {
		if it.Bought {
			bought = append(bought, it)
		} else {
			pending = append(pending, it)
		}
	}
	if len(pending) > 0 {
		fmt.Fprintln(Out, "Купить:")
		for _, it := range pending {
			fmt.Fprintf(Out, "- %d  %s  %s  %s\n", it.ID, it.Name, it.Price, it.Link)
		}
	}
	if len(bought) > 0 {
		fmt.Fprintln(Out, "Куплено:")
		for _, it := range bought {
			fmt.Fprintf(Out, "- %d  %s  %s\n", it.ID, it.Name, it.Price)
		}
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
