package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:9000"

// Fires random traffic at the order API. Export TOKEN with a customer
// JWT before running, unauthenticated requests only exercise the 401 path.
var token = os.Getenv("TOKEN")

var carIDs = []string{"1", "2", "3", "42", "missing"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	var req *http.Request
	switch rand.Intn(3) {
	case 0:
		body, _ := json.Marshal(map[string]string{"car_id": carIDs[rand.Intn(len(carIDs))]})
		req, _ = http.NewRequest(http.MethodPost, baseURL+"/orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	case 1:
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/orders/my", nil)
	default:
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/orders", nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println(req.Method, req.URL.Path, "->", resp.Status)
	resp.Body.Close()
}
