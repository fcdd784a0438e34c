package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const (
	baseURL = "http://localhost:3000/api"
)

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // No timeout, generation can be slow on a cold model
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func ask(question string) {
	resp, body, err := sendRequest("POST", "/ask/v1", map[string]interface{}{
		"question": question,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var askResp map[string]interface{}
	json.Unmarshal(body, &askResp)
	prettyPrint(askResp)
}

func main() {
	color.Cyan("🚀 Starting Ask API Test\n")

	// 1. List supported intents
	color.Yellow("\n1. Get Supported Intents")
	resp, body, err := sendRequest("GET", "/ask/v1/intents", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var intentsResp map[string]interface{}
	json.Unmarshal(body, &intentsResp)
	prettyPrint(intentsResp)

	// 2. One question per supported intent (run cmd/seed first)
	color.Yellow("\n2. List Scenarios")
	ask("Show me all scenarios")

	color.Yellow("\n3. Most Defective Scenario")
	ask("Which scenario has the most defects?")

	color.Yellow("\n4. Open Defects (synonym: bugs)")
	ask("Are there any open bugs?")

	color.Yellow("\n5. Failed Steps")
	ask("Which steps are failing?")

	color.Yellow("\n6. Steps Without Proof")
	ask("Which steps have no proof?")

	// 3. Out-of-vocabulary question must still answer, not error
	color.Yellow("\n7. Unknown Question")
	ask("What is the meaning of life?")

	// 4. Repeat a question: second response should come from the answer cache
	color.Yellow("\n8. Repeated Question (cache check)")
	ask("Which scenario has the most defects?")

	color.Cyan("\n✅ Ask API test finished")
}
