package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lmittmann/tint"

	"okved_game/internal/config"
	"okved_game/internal/domain/entity"
	"okved_game/internal/domain/service/game"
	"okved_game/internal/infrastructure/okved"
	"okved_game/pkg/contextx"
	"okved_game/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(log)

	if err := run(ctx, log); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.Okved.FetchTimeout}

	repo := okved.NewRepository(cfg.Okved, httpClient)

	// Прогреваем кэш до первого раунда, чтобы игрок не ждал сеть
	// после ввода номера.
	if _, err := repo.GetAll(ctx); err != nil {
		fmt.Println("⚠️  Не удалось загрузить справочник ОКВЭД, но игра всё равно попробует.")
	}

	session := game.NewSession(repo)

	fmt.Println("🎲 Игра «Найди свой ОКВЭД по номеру телефона»")
	fmt.Println("Введите номер телефона (пустая строка или Ctrl+C — выход):")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			break
		}

		printRound(session.PlayRound(ctx, input))

		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Err: %w", err)
	}

	fmt.Println("До встречи!")

	return nil
}

func printRound(result entity.GameResult) {
	if !result.Succeeded() {
		fmt.Printf("⚠️  %s: %s\n", result.Err.Code, result.Err.Message)
		return
	}

	match := result.Match

	fmt.Printf("📱 Номер:  %s\n", match.Phone)
	fmt.Printf("📋 ОКВЭД:  %s — %s\n", match.Item.Code, match.Item.Name)
	fmt.Printf("🔢 Совпало цифр с конца: %d\n", match.MatchLength)

	if match.Fallback {
		fmt.Println("🤷 Ни одной общей цифры — код выпал «для галочки».")
	}
}
