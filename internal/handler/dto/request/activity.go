package request

// Activity is the minimal bot-channel envelope the webhook understands:
// plain messages carry Text, card submits arrive as invoke activities with
// the form fields either under value.action.data or inlined in value.
type Activity struct {
	Type         string                `json:"type"`
	Text         string                `json:"text,omitempty"`
	Value        *ActivityValue        `json:"value,omitempty"`
	From         ActivityAccount       `json:"from"`
	Conversation *ActivityConversation `json:"conversation,omitempty"`
}

type ActivityAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ActivityConversation struct {
	ID string `json:"id"`
}

type ActivityValue struct {
	Verb   string          `json:"verb,omitempty"`
	Action *ActivityAction `json:"action,omitempty"`

	OrderFields
}

type ActivityAction struct {
	Verb string      `json:"verb,omitempty"`
	Data OrderFields `json:"data,omitempty"`
}

type OrderFields struct {
	Slot       string `json:"slot,omitempty"`
	CoffeeType string `json:"coffeeType,omitempty"`
	Size       string `json:"size,omitempty"`
	Milk       string `json:"milk,omitempty"`
	Sugar      string `json:"sugar,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func (a Activity) Verb() string {
	if a.Value == nil {
		return ""
	}
	if a.Value.Action != nil && a.Value.Action.Verb != "" {
		return a.Value.Action.Verb
	}
	return a.Value.Verb
}

// Fields returns the submitted form fields, preferring the action wrapper.
func (a Activity) Fields() OrderFields {
	if a.Value == nil {
		return OrderFields{}
	}
	if a.Value.Action != nil {
		return a.Value.Action.Data
	}
	return a.Value.OrderFields
}

func (a Activity) ConversationID() string {
	if a.Conversation == nil {
		return ""
	}
	return a.Conversation.ID
}
