package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/dto"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"
)

// Client talks to the ticket server over its regular HTTP surface,
// holding the session cookie in a jar like a browser would.
type Client struct {
	baseURL string
	http    *http.Client
	isAdmin bool
}

func NewClient(host string, port int) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: fmt.Sprintf("http://%s:%d", host, port),
		http:    &http.Client{Jar: jar},
	}, nil
}

// Login posts the credential form. The server re-renders the login page
// on bad credentials and redirects to the dashboard on success, so the
// final URL after redirects tells the two apart.
func (c *Client) Login(username, password string) error {
	resp, err := c.http.PostForm(c.baseURL+"/login", url.Values{
		"username": {username},
		"password": {password},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.Request.URL.Path != "/" {
		return fmt.Errorf("invalid credentials")
	}
	c.isAdmin = c.probeAdmin()
	return nil
}

// probeAdmin checks the admin-only JSON listing: 200 means admin, 403
// means readonly.
func (c *Client) probeAdmin() bool {
	resp, err := c.http.Get(c.baseURL + "/existing_users")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *Client) IsAdmin() bool { return c.isAdmin }

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Tickets() ([]models.Ticket, error) {
	var tickets []models.Ticket
	return tickets, c.getJSON("/api/tickets", &tickets)
}

func (c *Client) ChartData() (dto.ChartData, error) {
	var data dto.ChartData
	return data, c.getJSON("/get_chart_data", &data)
}

// UpdateStatus drives the same route the dashboard links use.
func (c *Client) UpdateStatus(id uint, status string) error {
	if !c.isAdmin {
		return fmt.Errorf("unauthorized: admin access required")
	}
	resp, err := c.http.Get(fmt.Sprintf("%s/update_status/%d/%s", c.baseURL, id, url.PathEscape(status)))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("update status: %s", resp.Status)
	}
	return nil
}
