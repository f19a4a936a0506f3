package externals

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
)

var imageStoreUrl string

type imageStoreResponse struct {
	Url string `json:"url"`
}

func InitImageStoreApi() {
	imageStoreUrl = os.Getenv("IMAGE_STORE_URL")
	if imageStoreUrl == "" {
		imageStoreUrl = "http://localhost:8081/images"
	}
}

// UploadImage sends a base64 image payload to the blob store and returns the
// public URL assigned to it.
func UploadImage(name string, imageData string) (string, error) {
	requestBody, err := json.Marshal(map[string]string{
		"name":  name,
		"image": imageData,
	})
	if err != nil {
		return "", err
	}

	// call api
	resp, err := http.Post(imageStoreUrl, "application/json", bytes.NewReader(requestBody))
	if err != nil {
		log.Println("Error while uploading image to the image store")
		return "", err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("Error while reading response body: ", err)
		return "", err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		log.Println("Error while uploading image to the image store")
		return "", errImageStore(resp.StatusCode)
	}

	var response imageStoreResponse
	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("Error while decoding: ", err)
		return "", err
	}

	return response.Url, nil
}

type imageStoreError struct {
	statusCode int
}

func errImageStore(statusCode int) error {
	return &imageStoreError{statusCode: statusCode}
}

func (e *imageStoreError) Error() string {
	return "image store returned status " + http.StatusText(e.statusCode)
}
