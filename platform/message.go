package platform

import "fmt"

const (
	miniAppBaseURL = "https://miniapp.line.me/"
	heroImageURL   = "https://raw.githubusercontent.com/himanago/miniapp-handson/refs/heads/main/game_icon.png"
	footerGoURL    = "https://vos.line-scdn.net/service-notifier/footer_go_btn.png"
)

// Message is a flex message accepted by the share target picker.
type Message struct {
	Type     string `json:"type"`
	AltText  string `json:"altText"`
	Contents Bubble `json:"contents"`
}

// Bubble is the single card of a flex message.
type Bubble struct {
	Type   string     `json:"type"`
	Hero   *Component `json:"hero,omitempty"`
	Body   *Component `json:"body,omitempty"`
	Footer *Component `json:"footer,omitempty"`
}

// Component is any box, text, image, button or separator inside a bubble.
type Component struct {
	Type        string      `json:"type"`
	Layout      string      `json:"layout,omitempty"`
	Contents    []Component `json:"contents,omitempty"`
	Text        string      `json:"text,omitempty"`
	URL         string      `json:"url,omitempty"`
	Size        string      `json:"size,omitempty"`
	AspectRatio string      `json:"aspectRatio,omitempty"`
	AspectMode  string      `json:"aspectMode,omitempty"`
	Color       string      `json:"color,omitempty"`
	Weight      string      `json:"weight,omitempty"`
	Wrap        *bool       `json:"wrap,omitempty"`
	Spacing     string      `json:"spacing,omitempty"`
	Margin      string      `json:"margin,omitempty"`
	Style       string      `json:"style,omitempty"`
	Height      string      `json:"height,omitempty"`
	Gravity     string      `json:"gravity,omitempty"`
	Flex        int         `json:"flex,omitempty"`
	Action      *Action     `json:"action,omitempty"`
}

// Action is a tap target on a component.
type Action struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URI   string `json:"uri"`
}

func boolPtr(b bool) *bool { return &b }

// AppURL returns the link that opens the mini-app.
func AppURL(appID string) string {
	return miniAppBaseURL + appID
}

// ScoreMessage builds the score card shared at the end of a game.
func ScoreMessage(appID string, score int) Message {
	appURL := AppURL(appID)

	text := func(s, size, color string) Component {
		return Component{Type: "text", Text: s, Size: size, Color: color, Wrap: boolPtr(true)}
	}
	box := func(spacing string, contents ...Component) Component {
		return Component{Type: "box", Layout: "vertical", Spacing: spacing, Contents: contents}
	}

	headline := text(fmt.Sprintf("I scored %d points in Tetoris!", score), "lg", "#000000")
	headline.Weight = "bold"

	buttons := box("xs",
		Component{
			Type:   "button",
			Action: &Action{Type: "uri", Label: "Play now!", URI: appURL},
			Style:  "primary",
			Height: "md",
			Color:  "#17c950",
		},
		Component{
			Type:   "button",
			Action: &Action{Type: "uri", Label: "Share", URI: appURL + "/share"},
			Style:  "link",
			Height: "md",
			Color:  "#469fd6",
		},
	)
	buttons.Margin = "lg"

	body := box("md",
		box("none", headline),
		box("none", text("A quick mini game", "sm", "#999999")),
		buttons,
	)

	footer := Component{
		Type:   "box",
		Layout: "vertical",
		Contents: []Component{
			{Type: "separator", Color: "#f0f0f0"},
			{
				Type:    "box",
				Layout:  "horizontal",
				Flex:    1,
				Spacing: "md",
				Margin:  "md",
				Contents: []Component{
					{Type: "image", URL: heroImageURL, Flex: 1, Gravity: "center"},
					{
						Type: "text", Text: "Tetoris", Flex: 19, Size: "xs", Color: "#999999",
						Weight: "bold", Gravity: "center", Wrap: boolPtr(false),
					},
					{
						Type: "image", URL: footerGoURL, Flex: 1, Gravity: "center", Size: "xxs",
						Action: &Action{Type: "uri", Label: "action", URI: appURL},
					},
				},
			},
		},
	}

	return Message{
		Type:    "flex",
		AltText: "Share your Tetoris score!",
		Contents: Bubble{
			Type: "bubble",
			Hero: &Component{
				Type:        "image",
				URL:         heroImageURL,
				Size:        "full",
				AspectRatio: "20:13",
				AspectMode:  "cover",
			},
			Body:   &body,
			Footer: &footer,
		},
	}
}
