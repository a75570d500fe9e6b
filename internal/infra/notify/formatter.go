package notify

import (
	"fmt"
	"strings"
	"time"

	"coffeebot/internal/domain/order"
)

// Formatter renders the user-facing and barista-facing texts for an order
// outcome. Times are shown in the reference timezone.
type Formatter struct {
	loc *time.Location
}

func NewFormatter(loc *time.Location) *Formatter {
	return &Formatter{loc: loc}
}

func (f *Formatter) Confirmation(rec *order.Record, ordinal, limit int) string {
	item := rec.Item()

	pickup := "before 12:00 PM"
	if rec.Slot() == order.SlotPM {
		pickup = "after 12:00 PM"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ **Order Confirmed!**\n\n")
	fmt.Fprintf(&b, "☕ **%s %s**%s%s\n", item.Size(), item.CoffeeType(), milkText(item), sugarText(item))
	fmt.Fprintf(&b, "🕒 **Pickup:** %s\n", pickup)
	fmt.Fprintf(&b, "📊 **Queue:** #%d of %d (%s slot)", ordinal, limit, rec.Slot())
	if item.Notes() != "" {
		fmt.Fprintf(&b, "\n📝 **Notes:** %s", item.Notes())
	}
	b.WriteString("\n\nThanks! I'll get started on your coffee! ☕✨")
	return b.String()
}

// Rejection names the full slot and the sibling's status. siblingRemaining is
// nil when the sibling lookup failed; the text degrades to unknown rather
// than suppressing the rejection.
func (f *Formatter) Rejection(slot order.Slot, count, limit int, siblingRemaining *int) string {
	sibling := slot.Sibling()

	var siblingStatus string
	switch {
	case siblingRemaining == nil:
		siblingStatus = "status is unknown right now"
	case *siblingRemaining == 0:
		siblingStatus = "is also full"
	default:
		siblingStatus = fmt.Sprintf("has %d spots left", *siblingRemaining)
	}

	return fmt.Sprintf("😔 Sorry, the **%s** quota is full (%d/%d). The **%s** window %s.",
		slot, count, limit, sibling, siblingStatus)
}

func (f *Formatter) Barista(rec *order.Record, ordinal, limit int) string {
	item := rec.Item()
	orderTime := rec.CreatedAt().In(f.loc).Format("3:04 PM")

	var b strings.Builder
	fmt.Fprintf(&b, "🚨 **New Coffee Order!** (#%d/%d - %s slot)\n\n", ordinal, limit, rec.Slot())
	fmt.Fprintf(&b, "👤 **Customer:** %s\n", rec.Requester().DisplayName())
	fmt.Fprintf(&b, "☕ **Order:** %s %s%s%s\n", item.Size(), item.CoffeeType(), milkText(item), sugarText(item))
	fmt.Fprintf(&b, "🕒 **Ordered at:** %s", orderTime)
	if item.Notes() != "" {
		fmt.Fprintf(&b, "\n📝 **Notes:** %s", item.Notes())
	}
	fmt.Fprintf(&b, "\n\n💡 **Remaining %s slots:** %d", rec.Slot(), limit-ordinal)
	return b.String()
}

func (f *Formatter) Help(amQuota, pmQuota int) string {
	return fmt.Sprintf("🤖 **Coffee Bot Commands:**\n\n"+
		"• Type \"**order**\" or \"**coffee**\" to place an order\n"+
		"• Available daily quotas: AM (%d), PM (%d)\n"+
		"• Orders reset every half day at midnight and noon", amQuota, pmQuota)
}

func (f *Formatter) Greeting() string {
	return "👋 Hi! Type \"**order**\" to get your coffee card ☕\n\nOr type \"**help**\" for more options."
}

func (f *Formatter) InvalidRequest() string {
	return "❌ Missing required fields. Please fill out the form completely."
}

func (f *Formatter) TransientFailure() string {
	return "❌ Sorry, there was an error processing your order. Please try again later."
}

func milkText(item order.Item) string {
	if !item.HasMilk() {
		return ""
	}
	return fmt.Sprintf(" with %s milk", item.Milk())
}

func sugarText(item order.Item) string {
	if !item.HasSugar() {
		return ""
	}
	return fmt.Sprintf(", %s sugar", item.Sugar())
}
