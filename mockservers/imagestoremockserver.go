package mockservers

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

func StartImageStoreServer() {
	http.HandleFunc("/images", ImageStoreHandler)

	fmt.Println("Image store server starting on port 8081")

	err := http.ListenAndServe(":8081", nil)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start image store server")
	}
}

func ImageStoreHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	}
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	// content-addressed file name, the payload itself is discarded
	digest := sha1.Sum([]byte(request.Image))
	url := "http://localhost:8081/images/" + hex.EncodeToString(digest[:]) + ".jpg"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte(`{"url": "` + url + `"}`))
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
