package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Eterniance/whist-points/internal/common/clock"
	"github.com/Eterniance/whist-points/internal/common/uuid"
	"github.com/Eterniance/whist-points/internal/hand"
	"github.com/Eterniance/whist-points/internal/models"
	sessionRepo "github.com/Eterniance/whist-points/internal/repositories/session"
	sessionService "github.com/Eterniance/whist-points/internal/services/session"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	repo, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	// Initialize the session service
	svc, err := sessionService.NewService(&sessionService.Config{
		SessionRepo: repo,
		Clock:       &clock.DefaultClock{},
		UUID:        uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	if err := run(context.Background(), svc); err != nil {
		log.Fatalf("Session ended with error: %v", err)
	}
}

func run(ctx context.Context, svc sessionService.Service) error {
	in := bufio.NewScanner(os.Stdin)

	rules := promptRules(in)
	created, err := svc.CreateSession(ctx, &sessionService.CreateSessionInput{Rules: rules})
	if err != nil {
		return err
	}
	id := created.SessionID
	fmt.Printf("Session %s started under %s rules\n", id, rules)

	for i := 0; i < models.MaxPlayers; i++ {
		for {
			name := prompt(in, fmt.Sprintf("Player %d name: ", i+1))
			if _, err := svc.AddPlayer(ctx, &sessionService.AddPlayerInput{SessionID: id, Name: name}); err != nil {
				fmt.Println(err)
				continue
			}
			break
		}
	}

	for {
		switch prompt(in, "\n[h]and, [u]ndo, [s]tandings, [l]og, [q]uit: ") {
		case "h":
			if err := enterHand(ctx, svc, in, id); err != nil {
				fmt.Println(err)
			}
		case "u":
			out, err := svc.UndoLastHand(ctx, &sessionService.UndoLastHandInput{SessionID: id})
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Removed %s hand, totals now %v\n", out.Removed.GamemodeName, out.Totals)
		case "s":
			printStandings(ctx, svc, id)
		case "l":
			printHistory(ctx, svc, id)
		case "q":
			return nil
		}
	}
}

// enterHand walks the hand entry protocol: pick a contract, then answer the
// builder's requests in the order it lists them.
func enterHand(ctx context.Context, svc sessionService.Service, in *bufio.Scanner, id string) error {
	contracts, err := svc.ListContracts(ctx, &sessionService.ListContractsInput{SessionID: id})
	if err != nil {
		return err
	}

	for i, c := range contracts.Contracts {
		marker := " "
		if i == contracts.Selected {
			marker = "*"
		}
		fmt.Printf("%s %d: %s\n", marker, i, describeContract(c))
	}

	if idx, err := strconv.Atoi(prompt(in, "Contract: ")); err == nil {
		if _, err := svc.SelectContract(ctx, &sessionService.SelectContractInput{SessionID: id, Index: idx}); err != nil {
			return err
		}
	}

	started, err := svc.StartHand(ctx, &sessionService.StartHandInput{SessionID: id})
	if err != nil {
		return err
	}

	for _, request := range started.Requests {
		if err := answer(ctx, svc, in, id, request); err != nil {
			if _, cancelErr := svc.CancelHand(ctx, &sessionService.CancelHandInput{SessionID: id}); cancelErr != nil {
				return cancelErr
			}
			return err
		}
	}

	out, err := svc.CompleteHand(ctx, &sessionService.CompleteHandInput{SessionID: id})
	if err != nil {
		return err
	}

	fmt.Printf("Hand recorded: %v, totals %v\n", out.Recap.Scores, out.Totals)
	return nil
}

// answer keeps re-asking one request until the service accepts the value
func answer(ctx context.Context, svc sessionService.Service, in *bufio.Scanner, id string, request hand.InputRequest) error {
	for {
		var err error
		switch request.Kind {
		case hand.RequestContractorsSolo, hand.RequestContractorsTeam, hand.RequestContractorsOther:
			n := request.PlayerCount()
			names := splitNames(prompt(in, fmt.Sprintf("Contractors (%d names, comma separated): ", n)))

			var points []int
			if request.Kind == hand.RequestContractorsOther {
				points, err = parsePoints(prompt(in, fmt.Sprintf("Points (%d values, comma separated): ", n)))
				if err != nil {
					fmt.Println(err)
					continue
				}
			}

			_, err = svc.SubmitContractors(ctx, &sessionService.SubmitContractorsInput{SessionID: id, Names: names, Points: points})

		case hand.RequestBid:
			var bid int
			bid, err = strconv.Atoi(prompt(in, fmt.Sprintf("Bid [%d-%d]: ", request.Min, request.Max)))
			if err == nil {
				_, err = svc.SubmitBid(ctx, &sessionService.SubmitBidInput{SessionID: id, Bid: bid})
			}

		case hand.RequestTricks:
			var tricks int
			tricks, err = strconv.Atoi(prompt(in, fmt.Sprintf("Tricks [%d-%d]: ", request.Min, request.Max)))
			if err == nil {
				_, err = svc.SubmitTricks(ctx, &sessionService.SubmitTricksInput{SessionID: id, Tricks: tricks})
			}
		}

		if err == nil {
			return nil
		}
		fmt.Println(err)
	}
}

func printStandings(ctx context.Context, svc sessionService.Service, id string) {
	out, err := svc.GetStandings(ctx, &sessionService.GetStandingsInput{SessionID: id})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range out.Players {
		fmt.Printf("%-12s %4d\n", p.Name, p.Score)
	}
}

func printHistory(ctx context.Context, svc sessionService.Service, id string) {
	out, err := svc.GetHistory(ctx, &sessionService.GetHistoryInput{SessionID: id})
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, entry := range out.Entries {
		fmt.Printf("%2d %-10s %v -> %v\n", i+1, entry.Recap.GamemodeName, entry.Recap.Scores, entry.Snapshot)
	}
}

func promptRules(in *bufio.Scanner) models.GameRules {
	for {
		switch prompt(in, "Rules ([d]utch / [f]rench): ") {
		case "d":
			return models.GameRulesDutch
		case "f":
			return models.GameRulesFrench
		}
	}
}

func describeContract(c *models.Contract) string {
	if c.HasBid() {
		return fmt.Sprintf("%s (%s, bid %d-%d)", c.Mode, c.Shape, c.Bid.Min, c.Bid.Max)
	}
	return fmt.Sprintf("%s (%s)", c.Mode, c.Shape)
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

func splitNames(line string) []string {
	parts := strings.Split(line, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func parsePoints(line string) ([]int, error) {
	parts := strings.Split(line, ",")
	points := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid point value %q", p)
		}
		points = append(points, v)
	}
	return points, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
