package commands

import (
	"context"
	"fmt"

	"WishKeeper/internal/cli/bootstrap"
	"WishKeeper/internal/config"
)

type totalCmd struct{}

func (totalCmd) Name() string { return "total" }
func (totalCmd) Description() string {
	return "Сводка: сколько куплено и на какую сумму ещё покупать"
}
func (totalCmd) Usage() string { return "total" }

func (totalCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenWishlist(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer done()

	st := svc.Stats()
	fmt.Fprintf(Out, "Купить: %d\n", st.Pending)
	fmt.Fprintf(Out, "Куплено: %d\n", st.Bought)
	fmt.Fprintf(Out, "Сумма к покупке: %.2f\n", st.PendingTotal)
	return nil
}

func init() { RegisterCmd(totalCmd{}) }
