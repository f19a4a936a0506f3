package handlers

import (
	"dinefind-server/db"
	"encoding/json"
	"log"
	"net/http"
)

func HandleSearchTags(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	_, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// empty or missing query matches nothing
	query := r.URL.Query().Get("tag")

	tagDAO := db.NewTagDAO(db.GetDB())
	tags, err := tagDAO.SearchTags(query)
	if err != nil {
		log.Println("Error searching tags: ", err)
		http.Error(w, "Error searching tags", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(tags)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}
