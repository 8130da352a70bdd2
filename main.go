package main

import (
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"telegram-reminder-bot/internal/config"
	"telegram-reminder-bot/internal/gateway"
	"telegram-reminder-bot/internal/handlers"
	"telegram-reminder-bot/internal/scheduler"
	"telegram-reminder-bot/internal/storage"
	"telegram-reminder-bot/internal/utils"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN etc.
	cfg := config.Load()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	utils.Must(err)
	log.Printf("authorized as @%s", bot.Self.UserName)

	db, err := storage.New(cfg.DBPath)
	utils.Must(err)

	gw := gateway.NewTelegram(bot)
	loc := cfg.Location()

	sched, err := scheduler.New(db, gw, loc, cfg.Stickers, time.Now)
	utils.Must(err)
	utils.Must(sched.Recover())
	sched.Start()
	defer sched.Shutdown()

	h := handlers.New(gw, sched, loc, cfg.Stickers)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = cfg.PollTimeout

	// one consumer goroutine: a chat's updates are handled in arrival order
	for upd := range bot.GetUpdatesChan(updateConfig) {
		switch {
		case upd.Message != nil && upd.Message.IsCommand():
			h.HandleCommand(upd.Message)
		case upd.Message != nil:
			h.HandleText(upd.Message)
		case upd.CallbackQuery != nil:
			h.HandleCallback(upd.CallbackQuery)
		}
	}
}
