// Package handlers provides the API Gateway request handlers that front
// the Forth CRM for qualification, contact, and report workflows.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// corsHeaders returns the permissive CORS headers every handler emits.
func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,Authorization,API-Key",
		"Access-Control-Allow-Methods": "GET,POST,PUT,OPTIONS",
		"Content-Type":                 "application/json",
	}
}

// preflight answers CORS preflight requests. The second return is true
// when the request was a preflight and has been handled.
func preflight(request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, bool) {
	if request.HTTPMethod != http.MethodOptions {
		return events.APIGatewayProxyResponse{}, false
	}
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusNoContent,
		Headers:    corsHeaders(),
	}, true
}

// jsonResponse marshals a body with the standard headers.
func jsonResponse(statusCode int, v interface{}) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(v)
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    corsHeaders(),
		Body:       string(body),
	}, nil
}

// errorResponse renders an error as {"error": message} with the status
// code from the error taxonomy.
func errorResponse(statusCode int, message string) (events.APIGatewayProxyResponse, error) {
	return jsonResponse(statusCode, map[string]string{"error": message})
}
