package handlers

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	webmodels "github.com/amigotrunfo/trunfo/backend/models"
	"github.com/amigotrunfo/trunfo/backend/utils"
	"github.com/amigotrunfo/trunfo/trunfo/battle"
	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/config"
	"github.com/amigotrunfo/trunfo/trunfo/database"
	"github.com/amigotrunfo/trunfo/trunfo/leveling"
	"github.com/amigotrunfo/trunfo/trunfo/onboarding"
	"github.com/amigotrunfo/trunfo/trunfo/packs"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type PackOpener interface {
	Open(ctx context.Context, profileID string) (*packs.Result, error)
}

type BattleService interface {
	Start(ctx context.Context, profileID string, cardID int64) (battle.Battle, error)
	Get(battleID string) (battle.Battle, error)
	Choose(ctx context.Context, battleID string, index int) (*battle.Result, error)
}

type Onboarder interface {
	CreateFounder(ctx context.Context, profileID string, in onboarding.FounderInput) (cards.Card, error)
	Preview(ctx context.Context, in onboarding.FounderInput) (cards.Card, error)
}

type ProfileReader interface {
	GetProfileView(ctx context.Context, profileID string) (*database.ProfileView, error)
}

// WebApp represents the web application with all dependencies
type WebApp struct {
	DB         Pinger
	Packs      PackOpener
	Battles    BattleService
	Onboarding Onboarder
	Profiles   ProfileReader
	Levels     *leveling.Calculator
	Version    string
}

func (w *WebApp) levels() *leveling.Calculator {
	if w.Levels == nil {
		return leveling.Default()
	}
	return w.Levels
}

// profileID reads and validates the :id route param
func profileID(c *fiber.Ctx) (string, []webmodels.ValidationError) {
	id := c.Params("id")
	return id, utils.ValidateProfileID(id)
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := webmodels.HealthResponse{
			Status:   "healthy",
			Database: "ok",
			Version:  webApp.Version,
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), config.HealthCheckTimeout)
		defer cancel()

		if err := webApp.DB.Ping(ctx); err != nil {
			slog.Warn("Health check database ping failed",
				slog.String("type", "http"),
				slog.Any("error", err))
			resp.Status = "degraded"
			resp.Database = "unreachable"
			return utils.SendJSON(c, fiber.StatusServiceUnavailable, webmodels.NewSuccessResponse(resp, "Database unreachable"))
		}

		return utils.SendSuccess(c, resp, "Health check successful")
	}
}

func Onboard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, verrs := profileID(c)
		if len(verrs) > 0 {
			return utils.HandleValidationErrors(c, verrs)
		}

		var in onboarding.FounderInput
		if err := c.BodyParser(&in); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		card, err := webApp.Onboarding.CreateFounder(c.UserContext(), id, in)
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		return utils.SendCreated(c, webmodels.NewCardDTO(card), "Founder card created")
	}
}

func PreviewCard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in onboarding.FounderInput
		if err := c.BodyParser(&in); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		card, err := webApp.Onboarding.Preview(c.UserContext(), in)
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		return utils.SendSuccess(c, webmodels.NewCardDTO(card), "Card preview generated")
	}
}

func OpenPack(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, verrs := profileID(c)
		if len(verrs) > 0 {
			return utils.HandleValidationErrors(c, verrs)
		}

		result, err := webApp.Packs.Open(c.UserContext(), id)
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		return utils.SendSuccess(c, webmodels.PackResponse{
			Cards:          webmodels.NewCardDTOs(result.Cards),
			PacksRemaining: result.PacksRemaining,
		}, "Pack opened")
	}
}

func StartBattle(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, verrs := profileID(c)
		if len(verrs) > 0 {
			return utils.HandleValidationErrors(c, verrs)
		}

		var req webmodels.StartBattleRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if verrs := utils.ValidateStartBattle(&req); len(verrs) > 0 {
			return utils.HandleValidationErrors(c, verrs)
		}

		b, err := webApp.Battles.Start(c.UserContext(), id, req.CardID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		return utils.SendCreated(c, webmodels.BattleResponse{
			Battle:     b,
			Attributes: webmodels.AttributeInfos(),
		}, "Battle started")
	}
}

func ChooseAttribute(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.ChooseAttributeRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if verrs := utils.ValidateChooseAttribute(&req); len(verrs) > 0 {
			return utils.HandleValidationErrors(c, verrs)
		}

		result, err := webApp.Battles.Choose(c.UserContext(), c.Params("id"), *req.Index)
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		return utils.SendSuccess(c, result, "Battle resolved")
	}
}

func GetBattle(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := webApp.Battles.Get(c.Params("id"))
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		return utils.SendSuccess(c, webmodels.BattleResponse{
			Battle:     b,
			Attributes: webmodels.AttributeInfos(),
		}, "")
	}
}

func GetProfile(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, verrs := profileID(c)
		if len(verrs) > 0 {
			return utils.HandleValidationErrors(c, verrs)
		}

		view, err := webApp.Profiles.GetProfileView(c.UserContext(), id)
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		summary := webmodels.ProfileSummary{
			ID:             view.ID,
			Username:       view.Username,
			XP:             view.Progress.XP,
			PacksAvailable: view.Progress.PacksAvailable,
			Level:          webApp.levels().Info(view.Progress.XP),
			Cards:          make([]webmodels.CardDTO, 0, len(view.Cards)),
		}
		for _, card := range view.Cards {
			dto := webmodels.NewCardDTO(card)
			if card.IsAvatar && summary.Avatar == nil {
				summary.Avatar = &dto
				continue
			}
			summary.Cards = append(summary.Cards, dto)
		}

		c.Set("X-Card-Count", strconv.Itoa(len(view.Cards)))
		return utils.SendSuccess(c, summary, "")
	}
}
