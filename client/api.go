package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/darasa/lms/core"
	"github.com/darasa/lms/core/content"
	"github.com/darasa/lms/core/course"
	"github.com/darasa/lms/core/user"
)

const defaultTimeout = 10 * time.Second

// APIError is returned for any non-2xx response. Error() embeds the
// numeric status code: callers branch on substrings like "401", so the
// code must stay inside the message text. The StatusCode field is the
// structured alternative for new call sites.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d, message: %s", e.StatusCode, e.Message)
}

type (
	Credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	// AuthUser is the login payload: the user record plus the opaque
	// token the session keeps. The token is never validated against the
	// server after login.
	AuthUser struct {
		user.User
		Token string `json:"token"`
	}
)

// Client is the gateway to the LMS HTTP API. Each method performs one
// HTTP request and either returns the decoded body or an error carrying
// the HTTP status code.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(conf core.ClientConfig) *Client {
	timeout := conf.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(conf.APIBaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode, Message: extractErrorMessage(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrap(err, "decoding response body")
		}
	}
	return nil
}

// extractErrorMessage digs the server's `{"error": ...}` envelope out of
// the raw body, falling back to the body text.
func extractErrorMessage(raw []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		var msg string
		if err := json.Unmarshal(envelope.Error, &msg); err == nil {
			return msg
		}
		return string(envelope.Error)
	}
	return string(raw)
}

// Users

func (c *Client) GetUsers() ([]user.User, error) {
	var users []user.User
	if err := c.do(http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(data user.NewUser) (user.User, error) {
	var usr user.User
	if err := c.do(http.MethodPost, "/users", data, &usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (c *Client) UpdateUser(id string, data user.UpdateUser) (user.User, error) {
	var usr user.User
	if err := c.do(http.MethodPut, "/users/"+id, data, &usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (c *Client) DeleteUser(id string) error {
	return c.do(http.MethodDelete, "/users/"+id, nil, nil)
}

func (c *Client) LoginUser(creds Credentials) (AuthUser, error) {
	var usr AuthUser
	if err := c.do(http.MethodPost, "/login", creds, &usr); err != nil {
		return AuthUser{}, err
	}
	return usr, nil
}

// Courses

// GetCourses tolerates both response shapes seen in the wild: a bare
// array and a `{"value": [...]}` wrapper. Unrecognized shapes yield an
// empty list rather than an error.
func (c *Client) GetCourses() ([]course.Course, error) {
	var raw json.RawMessage
	if err := c.do(http.MethodGet, "/courses", nil, &raw); err != nil {
		return nil, err
	}

	var courses []course.Course
	if err := json.Unmarshal(raw, &courses); err == nil {
		return courses, nil
	}

	var wrapped struct {
		Value []course.Course `json:"value"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Value != nil {
		return wrapped.Value, nil
	}
	return []course.Course{}, nil
}

func (c *Client) CreateCourse(data course.NewCourse) (course.Course, error) {
	var crs course.Course
	if err := c.do(http.MethodPost, "/courses", data, &crs); err != nil {
		return course.Course{}, err
	}
	return crs, nil
}

// Content

func (c *Client) GetContent() ([]content.Content, error) {
	var records []content.Content
	if err := c.do(http.MethodGet, "/content", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) CreateContent(data content.NewContent) (content.Content, error) {
	var cnt content.Content
	if err := c.do(http.MethodPost, "/content", data, &cnt); err != nil {
		return content.Content{}, err
	}
	return cnt, nil
}
