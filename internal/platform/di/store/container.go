// internal/platform/di/store/container.go
package store

import (
	"context"
	"log"
	"net/http"

	"radacycling/internal/adapters/in/http/middleware"
	storerouter "radacycling/internal/adapters/in/http/store"
	storeHandler "radacycling/internal/adapters/in/http/store/handler"
	fsrepo "radacycling/internal/adapters/out/firestore"
	gcsrepo "radacycling/internal/adapters/out/gcs"
	httpout "radacycling/internal/adapters/out/http"
	mailout "radacycling/internal/adapters/out/mail"
	storequery "radacycling/internal/application/query/store"
	"radacycling/internal/application/usecase"
	"radacycling/internal/platform/di/shared"
)

// Secret Manager secret IDs for keys not provided via env.
const (
	secretSquareToken   = "rada-square-access-token"
	secretSendGridKey   = "rada-sendgrid-api-key"
	secretWhatsAppToken = "rada-whatsapp-token"
)

// Container wires the storefront service from shared infra.
type Container struct {
	Infra *shared.Infra

	// Repositories
	Products  *fsrepo.ProductRepositoryFS
	Categories *fsrepo.CategoryRepositoryFS
	Portfolio *fsrepo.PortfolioRepositoryFS
	Reviews   *fsrepo.ReviewRepositoryFS
	Orders    *fsrepo.OrderRepositoryFS
	Messages  *fsrepo.MessageRepositoryFS
	CartLines *fsrepo.CartItemsRepositoryFS
	Images    *gcsrepo.ImageRepositoryGCS

	// Queries
	CatalogQ  *storequery.CatalogQuery
	CartQ     *storequery.CartQuery
	UserDataQ *storequery.UserDataQuery

	// Usecases
	Sessions  *usecase.CartSessionManager
	Checkout  *usecase.CheckoutUsecase
	Contact   *usecase.ContactUsecase
	ImageSync *usecase.ImageSyncUsecase
}

// NewContainer builds the full dependency graph. Secrets missing from env
// are fetched from Secret Manager; a key that resolves nowhere leaves its
// feature degraded but never blocks boot.
func NewContainer(ctx context.Context, inf *shared.Infra) *Container {
	c := &Container{Infra: inf}
	cfg := inf.Config

	// Out adapters
	c.Products = fsrepo.NewProductRepositoryFS(inf.Firestore)
	c.Categories = fsrepo.NewCategoryRepositoryFS(inf.Firestore)
	c.Portfolio = fsrepo.NewPortfolioRepositoryFS(inf.Firestore)
	c.Reviews = fsrepo.NewReviewRepositoryFS(inf.Firestore)
	c.Orders = fsrepo.NewOrderRepositoryFS(inf.Firestore)
	c.Messages = fsrepo.NewMessageRepositoryFS(inf.Firestore)
	c.CartLines = fsrepo.NewCartItemsRepositoryFS(inf.Firestore)
	c.Images = gcsrepo.NewImageRepositoryGCS(inf.GCS, inf.ImageBucket)

	squareToken := inf.SecretOrEnv(ctx, cfg.SquareAccessToken, secretSquareToken)
	sendgridKey := inf.SecretOrEnv(ctx, cfg.SendGridAPIKey, secretSendGridKey)
	whatsappToken := inf.SecretOrEnv(ctx, cfg.WhatsAppToken, secretWhatsAppToken)

	square := httpout.NewSquareClient(
		httpout.BaseURLForEnv(cfg.SquareEnv),
		squareToken,
		cfg.SquareLocationID,
		cfg.SquareRedirectURL,
	)
	whatsapp := httpout.NewWhatsAppClient(cfg.WhatsAppURL, whatsappToken, cfg.WhatsAppTo)
	mailer := mailout.NewInquiryMailer(
		mailout.NewSendGridClient(sendgridKey),
		cfg.SendGridFrom,
		cfg.ReceiverEmail,
	)

	// Queries
	c.CatalogQ = storequery.NewCatalogQuery(c.Products, c.Categories, c.Portfolio, c.Reviews, c.Images)
	c.CartQ = storequery.NewCartQuery(c.Products, c.Categories, c.Images)
	c.UserDataQ = storequery.NewUserDataQuery(c.Orders, c.Messages, cfg.AdminUID)

	// Usecases
	c.Sessions = usecase.NewCartSessionManager(c.CartLines)
	c.Checkout = usecase.NewCheckoutUsecase(square, c.Orders)
	c.Contact = usecase.NewContactUsecase(mailer, whatsapp, c.Messages)
	c.ImageSync = usecase.NewImageSyncUsecase(c.Images)

	return c
}

// Handler assembles the storefront mux with its middleware chain.
func (c *Container) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	auth := &middleware.UserAuthMiddleware{
		FirebaseAuth: c.Infra.FirebaseAuth,
		AdminUID:     c.Infra.Config.AdminUID,
	}
	if c.Infra.FirebaseAuth == nil {
		log.Printf("[di.store] WARN: firebase auth is nil; authenticated routes will answer 503")
	}

	cart := storeHandler.NewCartHandler(c.Sessions, c.CartQ)
	checkout := storeHandler.NewCheckoutHandler(c.Sessions, c.CartQ, c.Checkout)
	userData := storeHandler.NewUserDataHandler(c.UserDataQ)

	storerouter.Register(mux, storerouter.Deps{
		Catalog:   storeHandler.NewCatalogHandler(c.CatalogQ),
		Category:  storeHandler.NewCategoryHandler(c.CatalogQ),
		Portfolio: storeHandler.NewPortfolioHandler(c.CatalogQ),
		Review:    storeHandler.NewReviewHandler(c.CatalogQ),
		Cart:      auth.Handler(cart),
		Checkout:  auth.Handler(checkout),
		Contact:   storeHandler.NewContactHandler(c.Contact),
		UserData:  auth.Handler(userData),
	})

	// Chain order matters: CORS answers preflight even when an inner
	// handler panics and Recover replies.
	cors := middleware.CORS(c.Infra.Config.AllowedOrigin)
	return cors(middleware.Recover(mux))
}

// Close flushes cart sessions. Infra clients are closed by the caller.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Sessions != nil {
		c.Sessions.Close()
	}
}
