package handlers

import (
	"context"
	"dinefind-server/db"
	"dinefind-server/externals"
	"dinefind-server/model"
	"encoding/json"
	"errors"
	"gorm.io/gorm"
	"log"
	"net/http"
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)

func HandleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		addUser(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

// addUser registers a local user for a verified external identity; the
// Firebase UID comes from the token, never from the body.
func addUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	// the token must verify even though no local user exists yet
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		log.Println("Missing or invalid auth header")
		http.Error(w, "Missing or invalid auth header", http.StatusUnauthorized)
		return
	}
	idToken := strings.TrimPrefix(authHeader, "Bearer ")

	ctx := context.Background()
	firebaseUID, err := externals.VerifyFirebaseToken(ctx, idToken)
	if err != nil {
		log.Println("Unauthorized", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user model.User
	err = json.NewDecoder(r.Body).Decode(&user)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	// check non-empty strings
	if user.Username == "" || user.Email == "" {
		log.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	if !strings.Contains(user.Email, "@") {
		log.Println("Invalid email")
		http.Error(w, "Invalid email", http.StatusBadRequest)
		return
	}
	if user.Profile.Location == "" {
		log.Println("Blank location")
		http.Error(w, "You have to input location", http.StatusBadRequest)
		return
	}
	if user.Profile.PhoneNumber != "" && !phoneRegex.MatchString(user.Profile.PhoneNumber) {
		log.Println("Invalid phone number")
		http.Error(w, "Invalid phone number format", http.StatusBadRequest)
		return
	}

	user.FirebaseUID = firebaseUID
	user.IsAdmin = false

	// insert user, the unique indexes reject duplicate username and email
	userDAO := db.NewUserDAO(db.GetDB())
	err = userDAO.AddUser(&user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Println("Duplicate user: ", err)
			http.Error(w, "Username or email already registered", http.StatusConflict)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
	}
}

func HandleMe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getCurrentUser(w, r)
	case "DELETE":
		deleteCurrentUser(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

// deleteCurrentUser removes the caller's account; their reviews survive with
// the author reference cleared.
func deleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userDAO := db.NewUserDAO(db.GetDB())
	err = userDAO.DeleteUser(user.UserID)
	if err != nil {
		log.Println("Error while interacting with the db: ", err)
		http.Error(w, "Error while deleting user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func getCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "PATCH":
		updateProfile(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

// updateProfile applies a partial update to the caller's own user and
// profile; no other user can be targeted.
func updateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != "PATCH" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// get body content
	var updateData map[string]interface{}
	err = json.NewDecoder(r.Body).Decode(&updateData)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	userDAO := db.NewUserDAO(db.GetDB())

	// update fields in the request body, every field is optional but a
	// present field must be a string
	if raw, present := updateData["username"]; present {
		username, isString := raw.(string)
		if !isString || username == "" {
			log.Println("Invalid username")
			http.Error(w, "Invalid username", http.StatusBadRequest)
			return
		}
		if username != user.Username {
			// reject when a different user already holds the username
			existing, err1 := userDAO.GetUserByUsername(username)
			if err1 != nil {
				log.Println("Error while interacting with db: ", err1)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if existing != nil && existing.UserID != user.UserID {
				log.Println("Username already registered")
				http.Error(w, "This username is already registered", http.StatusConflict)
				return
			}
			user.Username = username
		}
	}
	if raw, present := updateData["email"]; present {
		email, isString := raw.(string)
		if !isString || email == "" || !strings.Contains(email, "@") {
			log.Println("Invalid email")
			http.Error(w, "Invalid email", http.StatusBadRequest)
			return
		}
		if email != user.Email {
			// reject when a different user already holds the email
			existing, err1 := userDAO.GetUserByEmail(email)
			if err1 != nil {
				log.Println("Error while interacting with db: ", err1)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if existing != nil && existing.UserID != user.UserID {
				log.Println("Email already registered")
				http.Error(w, "This email is already registered", http.StatusConflict)
				return
			}
			user.Email = email
		}
	}
	if raw, present := updateData["first_name"]; present {
		firstName, isString := raw.(string)
		if !isString {
			log.Println("Invalid first name")
			http.Error(w, "Invalid first name", http.StatusBadRequest)
			return
		}
		user.FirstName = firstName
	}
	if raw, present := updateData["last_name"]; present {
		lastName, isString := raw.(string)
		if !isString {
			log.Println("Invalid last name")
			http.Error(w, "Invalid last name", http.StatusBadRequest)
			return
		}
		user.LastName = lastName
	}
	if message, ok := applyProfileFields(&user.Profile, updateData); !ok {
		log.Println(message)
		http.Error(w, message, http.StatusBadRequest)
		return
	}

	// update user and profile in db; a concurrent update can slip past the
	// lookups above, the unique indexes have the final word
	err = userDAO.UpdateUserAndProfile(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Println("Duplicate username or email: ", err)
			http.Error(w, "Username or email already registered", http.StatusConflict)
			return
		}
		log.Println("Error while interacting with db: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
	}
}

// applyProfileFields applies the optional profile fields of a partial
// update. A field present with a non-string value, a blank location or a
// malformed phone number is rejected with the message to return.
func applyProfileFields(profile *model.Profile, updateData map[string]interface{}) (string, bool) {
	if raw, present := updateData["location"]; present {
		location, isString := raw.(string)
		if !isString {
			return "Invalid location", false
		}
		if location == "" {
			return "You have to input location", false
		}
		profile.Location = location
	}
	if raw, present := updateData["phone_number"]; present {
		phoneNumber, isString := raw.(string)
		if !isString {
			return "Invalid phone number", false
		}
		if phoneNumber != "" && !phoneRegex.MatchString(phoneNumber) {
			return "Invalid phone number format", false
		}
		profile.PhoneNumber = phoneNumber
	}
	if raw, present := updateData["things_love"]; present {
		thingsLove, isString := raw.(string)
		if !isString {
			return "Invalid things_love", false
		}
		profile.ThingsLove = thingsLove
	}
	if raw, present := updateData["description"]; present {
		description, isString := raw.(string)
		if !isString {
			return "Invalid description", false
		}
		profile.Description = description
	}
	return "", true
}
