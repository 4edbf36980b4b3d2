//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceURL = "http://localhost:8080"

// TestAPI_FullFlow walks the whole surface end-to-end against a running stack.
func TestAPI_FullFlow(t *testing.T) {
	waitForService(t)

	var listingID string

	t.Run("Step1_CreateListing", func(t *testing.T) {
		resp := post(t, serviceURL+"/api/v1/listings", map[string]interface{}{
			"name":            "Cabin",
			"description":     "A small cabin by the lake.",
			"location":        "Tahoe",
			"price_per_night": 100.00,
		})
		require.Equal(t, 201, resp.StatusCode)

		var listing map[string]interface{}
		decodeJSON(t, resp, &listing)
		listingID, _ = listing["listing_id"].(string)
		require.NotEmpty(t, listingID)
		assert.Equal(t, "Cabin", listing["name"])
		assert.NotEmpty(t, listing["created_at"])
	})

	t.Run("Step2_BookingRejectsEqualDates", func(t *testing.T) {
		resp := post(t, serviceURL+"/api/v1/bookings", map[string]interface{}{
			"listing":     listingID,
			"start_date":  "2024-06-01",
			"end_date":    "2024-06-01",
			"total_price": 100.00,
		})
		require.Equal(t, 400, resp.StatusCode)

		var body map[string]interface{}
		decodeJSON(t, resp, &body)
		assert.Equal(t, "Start date must be before end date", body["message"])
	})

	var bookingID string

	t.Run("Step3_CreateBooking", func(t *testing.T) {
		resp := post(t, serviceURL+"/api/v1/bookings", map[string]interface{}{
			"listing":     listingID,
			"start_date":  "2024-06-01",
			"end_date":    "2024-06-05",
			"total_price": 400.00,
			"status":      "pending",
		})
		require.Equal(t, 201, resp.StatusCode)

		var booking map[string]interface{}
		decodeJSON(t, resp, &booking)
		bookingID, _ = booking["booking_id"].(string)
		require.NotEmpty(t, bookingID)
		assert.Equal(t, listingID, booking["listing"])
		assert.Equal(t, "pending", booking["status"])
	})

	t.Run("Step4_ConfirmBooking", func(t *testing.T) {
		resp := patch(t, serviceURL+"/api/v1/bookings/"+bookingID+"/status", map[string]interface{}{
			"status": "confirmed",
		})
		require.Equal(t, 200, resp.StatusCode)

		var booking map[string]interface{}
		decodeJSON(t, resp, &booking)
		assert.Equal(t, "confirmed", booking["status"])
	})

	t.Run("Step5_CreateReview", func(t *testing.T) {
		resp := post(t, serviceURL+"/api/v1/reviews", map[string]interface{}{
			"listing": listingID,
			"rating":  5,
			"comment": "Great stay, would come back.",
		})
		require.Equal(t, 201, resp.StatusCode)
	})

	t.Run("Step6_ListNestedResources", func(t *testing.T) {
		resp := get(t, serviceURL+"/api/v1/listings/"+listingID+"/bookings")
		require.Equal(t, 200, resp.StatusCode)
		var bookings []map[string]interface{}
		decodeJSON(t, resp, &bookings)
		assert.Len(t, bookings, 1)

		resp = get(t, serviceURL+"/api/v1/listings/"+listingID+"/reviews")
		require.Equal(t, 200, resp.StatusCode)
		var reviews []map[string]interface{}
		decodeJSON(t, resp, &reviews)
		assert.Len(t, reviews, 1)
	})
}

func waitForService(t *testing.T) {
	t.Helper()
	for i := 0; i < 30; i++ {
		resp, err := http.Get(serviceURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return
		}
		time.Sleep(time.Second)
	}
	t.Fatal("service did not become ready")
}

func post(t *testing.T, url string, body map[string]interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func patch(t *testing.T, url string, body map[string]interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
