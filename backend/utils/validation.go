package utils

import (
	"regexp"

	"github.com/amigotrunfo/trunfo/backend/models"
)

// ValidProfileIDRegex accepts uuids and other opaque auth ids
var ValidProfileIDRegex = regexp.MustCompile(`^[A-Za-z0-9\-_]{1,64}$`)

func ValidateProfileID(id string) []models.ValidationError {
	if !ValidProfileIDRegex.MatchString(id) {
		return []models.ValidationError{{Field: "id", Description: "Profile id must be 1-64 letters, digits, '-' or '_'"}}
	}
	return nil
}

func ValidateStartBattle(req *models.StartBattleRequest) []models.ValidationError {
	if req.CardID <= 0 {
		return []models.ValidationError{{Field: "card_id", Description: "card_id is required"}}
	}
	return nil
}

func ValidateChooseAttribute(req *models.ChooseAttributeRequest) []models.ValidationError {
	if req.Index == nil {
		return []models.ValidationError{{Field: "index", Description: "index is required"}}
	}
	return nil
}
