// ABOUTME: URL construction for each Medium feed surface
// ABOUTME: Applies the optional proxy prefix to every outbound URL

package medium

// buildURL joins the proxy prefix, the site base and a path
func (c *Client) buildURL(path string) string {
	return c.config.ProxyPrefix + c.config.BaseURL + path
}

func (c *Client) userFeedURL(name string) string {
	return c.buildURL("/feed/@" + name)
}

func (c *Client) publicationFeedURL(name, tag string) string {
	if tag == "" {
		return c.buildURL("/feed/" + name)
	}
	return c.buildURL("/feed/" + name + "/tagged/" + tag)
}

func (c *Client) topicFeedURL(name string) string {
	return c.buildURL("/feed/topic/" + name)
}

func (c *Client) tagFeedURL(name string) string {
	return c.buildURL("/feed/tag/" + name)
}

func (c *Client) topicsURL() string {
	return c.buildURL("/topics?format=json")
}
