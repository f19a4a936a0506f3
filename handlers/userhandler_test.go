package handlers

import (
	"testing"

	"dinefind-server/model"
	"github.com/stretchr/testify/assert"
)

func TestPhoneRegex(t *testing.T) {
	valid := []string{
		"+41791234567",
		"0791234567",
		"+11234567890",
		"123456789",
	}
	for _, number := range valid {
		assert.True(t, phoneRegex.MatchString(number), "%q should be valid", number)
	}

	invalid := []string{
		"12345678",
		"phone",
		"+41 79 123 45 67",
		"2234567890123456",
	}
	for _, number := range invalid {
		assert.False(t, phoneRegex.MatchString(number), "%q should be invalid", number)
	}
}

func TestApplyProfileFields(t *testing.T) {
	profile := model.Profile{Location: "Zurich", ThingsLove: "pasta"}

	// present string fields are applied
	message, ok := applyProfileFields(&profile, map[string]interface{}{
		"location":     "Bern",
		"phone_number": "+41791234567",
	})
	assert.True(t, ok, message)
	assert.Equal(t, "Bern", profile.Location)
	assert.Equal(t, "+41791234567", profile.PhoneNumber)
	assert.Equal(t, "pasta", profile.ThingsLove)

	// absent fields leave the profile untouched
	message, ok = applyProfileFields(&profile, map[string]interface{}{})
	assert.True(t, ok, message)
	assert.Equal(t, "Bern", profile.Location)
}

func TestApplyProfileFieldsRejectsBlankLocation(t *testing.T) {
	profile := model.Profile{Location: "Zurich"}

	message, ok := applyProfileFields(&profile, map[string]interface{}{
		"location": "",
	})
	assert.False(t, ok)
	assert.Equal(t, "You have to input location", message)
	assert.Equal(t, "Zurich", profile.Location)
}

func TestApplyProfileFieldsRejectsWrongTypes(t *testing.T) {
	profile := model.Profile{Location: "Zurich"}

	// a present field with a non-string value is an error, not a no-op
	message, ok := applyProfileFields(&profile, map[string]interface{}{
		"location": float64(123),
	})
	assert.False(t, ok)
	assert.Equal(t, "Invalid location", message)
	assert.Equal(t, "Zurich", profile.Location)

	_, ok = applyProfileFields(&profile, map[string]interface{}{
		"phone_number": true,
	})
	assert.False(t, ok)

	_, ok = applyProfileFields(&profile, map[string]interface{}{
		"description": []interface{}{"x"},
	})
	assert.False(t, ok)
}

func TestApplyProfileFieldsRejectsMalformedPhone(t *testing.T) {
	profile := model.Profile{}

	message, ok := applyProfileFields(&profile, map[string]interface{}{
		"phone_number": "not-a-number",
	})
	assert.False(t, ok)
	assert.Equal(t, "Invalid phone number format", message)
}
