package constant

// Response type tags. Handlers must set exactly one; the transport never sees
// an untyped reply.
const (
	ResponseTypeGreeting             = "greeting"
	ResponseTypeServiceTypeSelection = "service_type_selection"
	ResponseTypeServiceSelection     = "service_selection"
	ResponseTypeInfoCollection       = "info_collection"
	ResponseTypeItemSelection        = "item_selection"
	ResponseTypeOptionSelection      = "option_selection"
	ResponseTypeCartUpdate           = "cart_update"
	ResponseTypeCartView             = "cart_view"
	ResponseTypeCheckoutSuccess      = "checkout_success"
	ResponseTypePayment              = "payment"
	ResponseTypeInformation          = "information"
	ResponseTypeError                = "error"
)

const (
	WelcomeMessage = "Welcome to ValetKleen! I'm here to help you with our premium laundry and dry cleaning services.\n\nHow can I assist you today?"

	StartOrderMessage = "Great! I'd love to help you place an order.\n\nPlease choose which service you need:"

	UnknownMessage = "I'm not sure I understood that. I can help you place an order, check prices, or answer questions about our services."

	RecoverableErrorMessage = "Sorry, something went wrong on our side. Your cart is unchanged - would you like to start over?"
)

// Suggestion chip sets, in the product's original wording.
var (
	WelcomeSuggestions = []string{
		"Place an Order",
		"What Services Do You Offer?",
		"Pricing Information",
		"Pickup & Delivery Info",
		"Contact Information",
	}

	ServiceTypeSuggestions = []string{
		"Our Laundry Services",
		"Our Dry-Cleaning Services",
		"Logistics Service",
	}

	ServiceSelectionSuggestions = []string{
		"Dry Cleaning Services",
		"Laundry Services",
	}

	CartUpdateSuggestions = []string{
		"Add More Items",
		"Proceed to Checkout",
		"View Full Cart",
		"Remove Item",
	}

	CheckoutSuccessSuggestions = []string{
		"Place Another Order",
		"What Services Do You Offer?",
		"Pricing Information",
		"Contact Information",
	}

	StartOverSuggestions = []string{
		"Place an Order",
		"View Services",
	}
)

// Canned knowledge-base answers for the inquiry intents.
const (
	ServicesInquiryAnswer = `We offer two main services:

**Dry Cleaning** - professional care for shirts, suits, dresses, coats, gowns, and specialty garments like wedding dresses.

**Laundry** - wash and fold by the bag, plus comforters, blankets, and mattress covers.

Everything is picked up and delivered to your door.`

	PricingInquiryAnswer = `A few popular prices:

- Office Shirt - $5.50
- Pants - $7.50
- 2 Piece Suit - $18.00
- Wedding Dress - $180.00 (boxed) / $150.00 (no box)
- Small Laundry Bag (12 lb) - $22.00
- Comforter (Queen/King) - $30.00

Ask about any specific item and I'll quote it, or start an order to see the full menu.`

	DeliveryInquiryAnswer = `We pick up and deliver door to door. Choose a pickup date and time window when you order; cleaning takes 24-48 hours and we deliver right back to your address. There's no extra charge for pickup or delivery.`

	AboutCompanyAnswer = `ValetKleen is a premium pickup-and-delivery laundry and dry cleaning service. We handle everything from everyday shirts to wedding gown preservation, with professional cleaning and door-to-door convenience.`

	ContactInfoAnswer = `You can reach us at:

- Email: support@valetkleen.com
- Phone: (240) 343-7316

Or just keep chatting with me - I can take your order right here.`

	ProcessInquiryAnswer = `Here's how it works:

1. Place your order and tell me what needs cleaning
2. We pick up from your address at the scheduled time
3. Professional cleaning within 24-48 hours
4. We deliver everything back to your door`
)
