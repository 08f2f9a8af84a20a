package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"bomapay-gateway/application"
	"bomapay-gateway/domain/request_params"
	"bomapay-gateway/utils/configs"
	"bomapay-gateway/utils/gen_ids"
	"bomapay-gateway/utils/gpooling"
	"bomapay-gateway/utils/helpers"
	logger2 "bomapay-gateway/utils/logger"
	"bomapay-gateway/utils/testcards"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type cardResult struct {
	Card      testcards.TestCard
	Succeeded bool
	StepUp    bool
	ErrorCode string
	Err       error
	Took      time.Duration
}

// Passed reports whether the gateway answered the way the card is documented to behave.
func (r cardResult) Passed() bool {
	if r.Err != nil {
		return false
	}
	return r.Succeeded == (r.Card.Expected == testcards.ResultSuccess)
}

func main() {
	amount := flag.Int64("amount", 1000, "amount in minor units")
	workers := flag.Int("workers", 4, "parallel payments")
	variants := flag.Bool("variants", true, "also run wrong cvc / wrong expiry variants")
	flag.Parse()

	_ = godotenv.Load()
	config, err := configs.LoadConfig()
	if err != nil {
		color.Red("config: %v", err)
		os.Exit(1)
	}
	lg, err := logger2.NewLogger(config.ENV)
	if err != nil {
		panic(err)
	}
	defer lg.Sync()

	client, err := application.NewClient(config.Gateway, lg)
	if err != nil {
		color.Red("client: %v", err)
		os.Exit(1)
	}
	pool, err := gpooling.NewPooling(*workers, lg)
	if err != nil {
		panic(err)
	}
	defer pool.Release()
	ids := gen_ids.NewGenerator("SB", 6)
	defer ids.Stop()

	if err := registerOrder(client, ids, *amount); err != nil {
		color.Red("register: %v", err)
		os.Exit(1)
	}

	cards := testcards.All()
	if *variants {
		cards = append(cards, testcards.Visa3DS2Frictionless.WithIncorrectCvc(), testcards.Visa3DS2Frictionless.WithIncorrectExpiry())
	}

	start := time.Now()
	results := runCards(client, pool, ids, cards, *amount, lg)
	failed := printResults(results, client.Config().Currency, *amount)
	fmt.Printf("%s cards in %s\n", humanize.Comma(int64(len(results))), time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

func registerOrder(client *application.Client, ids *gen_ids.Generator, amount int64) error {
	orderNumber := ids.GetId()
	registered, err := client.Orders().Register(amount, orderNumber, "https://example.com/return")
	if err != nil {
		return err
	}
	if !registered.IsSuccess() {
		return fmt.Errorf("gateway refused order %s: %s %s", orderNumber, registered.ErrorCode, registered.ErrorMessage)
	}
	status, err := client.Orders().Status(registered.OrderId)
	if err != nil {
		return err
	}
	state, _ := status.Status()
	color.Green("registered %s as %s (%s), payment page %s", orderNumber, registered.OrderId, state, registered.FormUrl)
	return nil
}

func runCards(client *application.Client, pool gpooling.IPool, ids *gen_ids.Generator, cards []testcards.TestCard, amount int64, lg *zap.Logger) []cardResult {
	var mu sync.Mutex
	results := make([]cardResult, 0, len(cards))
	for i := range cards {
		card := cards[i]
		err := pool.Submit(func() {
			started := time.Now()
			response, err := client.Payments().InstantPayment(request_params.InstantPaymentParams{
				Amount:      amount,
				OrderNumber: ids.GetId(),
				Description: card.Description,
				Card:        card.Card(),
				BackUrl:     "https://example.com/success",
				FailUrl:     "https://example.com/fail",
			})
			result := cardResult{Card: card, Err: err, Took: time.Since(started)}
			if err == nil {
				result.Succeeded = response.IsSuccess()
				result.StepUp = response.RequiresStepUp()
				result.ErrorCode = string(response.ErrorCode)
			} else {
				lg.With(zap.String("card", card.String()), zap.Error(err)).Warn("instant payment")
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		})
		if err != nil {
			mu.Lock()
			results = append(results, cardResult{Card: card, Err: err})
			mu.Unlock()
		}
	}
	pool.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Card.Description < results[j].Card.Description
	})
	return results
}

func printResults(results []cardResult, currency string, amount int64) (failed int) {
	fmt.Printf("paying %s per card\n", helpers.FormatAmount(amount, currency))
	for _, r := range results {
		line := fmt.Sprintf("%-45s %-8s code=%-6s 3ds=%-5t %s", r.Card.Description, r.Card.Expected, r.ErrorCode, r.StepUp, r.Took.Round(time.Millisecond))
		switch {
		case r.Err != nil:
			failed++
			color.Red("ERROR %s %v", line, r.Err)
		case r.Passed():
			color.Green("PASS  %s", line)
		default:
			failed++
			color.Yellow("FAIL  %s", line)
		}
	}
	return failed
}
