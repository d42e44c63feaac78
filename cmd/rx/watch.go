package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/groundswellhq/rolodex/internal/events"
	"github.com/groundswellhq/rolodex/internal/list"
	"github.com/groundswellhq/rolodex/internal/model"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Short:   "Live-updating list view for a filter set",
	GroupID: "records",
}

var watchContactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Watch a filtered contact list",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ctrl := list.NewController(list.Contacts(crm),
			list.WithPageSize(cfg.PageSize),
			list.WithDebounce(cfg.Debounce),
			list.WithCountCache(countCache),
		)
		defer ctrl.Close()

		search, _ := cmd.Flags().GetString("search")
		ctrl.SetFilter(contactFilterFromFlags(cmd))
		ctrl.SetSearch(search)
		return runWatch(ctx, cmd, ctrl, func(res list.Result[model.Contact]) {
			printContactTable(res.Records, res.TotalCount, res.TotalKnown)
		})
	},
}

var watchCompaniesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Watch a filtered company list",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ctrl := list.NewController(list.Companies(crm),
			list.WithPageSize(cfg.PageSize),
			list.WithDebounce(cfg.Debounce),
			list.WithCountCache(countCache),
		)
		defer ctrl.Close()

		search, _ := cmd.Flags().GetString("search")
		ctrl.SetFilter(companyFilterFromFlags(cmd))
		ctrl.SetSearch(search)
		return runWatch(ctx, cmd, ctrl, func(res list.Result[model.Company]) {
			printCompanyTable(res.Records, res.TotalCount, res.TotalKnown)
		})
	},
}

// watchable is the slice of the controller runWatch needs, independent of
// record type.
type watchable interface {
	Refresh()
	InvalidateCounts()
}

// runWatch prints each published result until interrupted. With a NATS
// URL configured it re-queries on record-change events; otherwise it
// polls at the configured interval.
func runWatch[T any](ctx context.Context, cmd *cobra.Command, ctrl *list.Controller[T], print func(list.Result[T])) error {
	interval, _ := cmd.Flags().GetDuration("interval")
	once, _ := cmd.Flags().GetBool("once")

	renders := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case res := <-ctrl.Updates():
				if res.Err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", res.Err)
				} else {
					print(res)
				}
				select {
				case renders <- struct{}{}:
				default:
				}
			}
		}
	}()

	// The debounced SetFilter/SetSearch calls above trigger the initial
	// fetch; wait for it before deciding whether to keep going.
	select {
	case <-ctx.Done():
		return nil
	case <-renders:
	}
	if once {
		return nil
	}

	if cfg.NATSURL != "" {
		return watchEvents(ctx, ctrl)
	}
	return watchPoll(ctx, ctrl, interval)
}

// watchEvents re-queries on NATS record-change events, debounced so a
// burst of writes triggers one refresh. Cached counts are dropped first:
// the write that produced the event may have changed any filter's total.
func watchEvents(ctx context.Context, ctrl watchable) error {
	reconnectCh := make(chan struct{}, 1)

	sub, err := events.NewNATSSubscriber(cfg.NATSURL,
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("nats: disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats: reconnected")
			select {
			case reconnectCh <- struct{}{}:
			default:
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("connecting to NATS: %w", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe("crm.>")
	if err != nil {
		return fmt.Errorf("subscribing to events: %w", err)
	}
	defer cancel()

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			debounce.Reset(200 * time.Millisecond)
		case <-reconnectCh:
			debounce.Reset(0) // immediate re-query after missed events
		case <-debounce.C:
			ctrl.InvalidateCounts()
			ctrl.Refresh()
		}
	}
}

// watchPoll refreshes at a fixed interval when no event bus is available.
func watchPoll(ctx context.Context, ctrl watchable, interval time.Duration) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
		ctrl.Refresh()
	}
}

func init() {
	for _, c := range []*cobra.Command{watchContactsCmd, watchCompaniesCmd} {
		c.Flags().Duration("interval", 5*time.Second, "polling interval without NATS")
		c.Flags().Bool("once", false, "exit after the first result")
		c.Flags().String("search", "", "free-text search")
	}
	registerContactFilterFlags(watchContactsCmd)
	registerCompanyFilterFlags(watchCompaniesCmd)
	watchCmd.AddCommand(watchContactsCmd, watchCompaniesCmd)
}
