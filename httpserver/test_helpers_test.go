package httpserver_test

import (
	"net/http"
	"net/http/httptest"

	"flickfinder/httpserver"
	"flickfinder/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{}
}

func doGet(server *httpserver.Server, path string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	server.Router.ServeHTTP(recorder, request)
	return recorder
}
