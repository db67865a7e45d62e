// Command checkout composes a consultancy order from the command line and
// optionally submits it to the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"motorcar_consultancy/internal/adapter/client"
	"motorcar_consultancy/internal/domain/checkout"

	_ "github.com/joho/godotenv/autoload"
)

// quantityFlags collects repeated -qty item=n values.
type quantityFlags map[string]int

func (q quantityFlags) String() string {
	parts := make([]string, 0, len(q))
	for k, v := range q {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v))
	}
	return strings.Join(parts, ",")
}

func (q quantityFlags) Set(v string) error {
	key, n, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected item=quantity, got %q", v)
	}
	qty, err := strconv.Atoi(n)
	if err != nil {
		return fmt.Errorf("quantity for %s: %w", key, err)
	}
	q[key] = qty
	return nil
}

func main() {
	quantities := quantityFlags{}
	var form client.CheckoutForm

	service := flag.String("service", checkout.DefaultServiceKey, "service key to order")
	flag.Var(quantities, "qty", "target quantity for a line item, as item=n (repeatable)")
	submit := flag.Bool("submit", false, "submit the order to the API")
	apiURL := flag.String("api", getenvDefault("CONSULTANCY_API_URL", "http://localhost:3000/api"), "consultancy API base URL")
	flag.StringVar(&form.FullName, "name", "", "customer full name")
	flag.StringVar(&form.Email, "email", "", "customer email")
	flag.StringVar(&form.Whatsapp, "whatsapp", "", "customer WhatsApp number")
	flag.StringVar(&form.Pincode, "pincode", "", "customer pincode")
	flag.StringVar(&form.Budget, "budget", "", "car budget")
	flag.StringVar(&form.CarType, "car-type", "", "car type")
	flag.StringVar(&form.FuelType, "fuel-type", "", "fuel type")
	flag.StringVar(&form.AdditionalInfo, "notes", "", "additional requirements")
	flag.BoolVar(&form.TermsAccepted, "agree", false, "accept the terms and conditions")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.NewConsultancyClient(*apiURL)
	flow := client.NewCheckoutFlow(api)
	if *submit {
		flow.SelectService(ctx, *service)
	} else {
		flow.Compose(*service)
	}

	for key, target := range quantities {
		current := 0
		for _, it := range flow.Items() {
			if it.ItemKey == key {
				current = it.Quantity
			}
		}
		if _, err := flow.ChangeQuantity(key, target-current); err != nil {
			log.Fatalf("quantity for %s: %v", key, err)
		}
	}

	printSummary(flow.Items(), flow.Totals())

	if !*submit {
		return
	}
	out, err := flow.Submit(ctx, form)
	if err != nil {
		log.Fatalf("Failed to place order: %v", err)
	}
	fmt.Printf("\nOrder placed successfully! Order ID: %s\n", out.OrderID)
}

func printSummary(items []checkout.LineItem, totals checkout.Totals) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tQTY\tUNIT\tLINE")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", it.DisplayName, it.Quantity, it.UnitPrice.StringFixed(2), it.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(w, "Subtotal\t\t\t%s\n", totals.Subtotal.StringFixed(2))
	fmt.Fprintf(w, "Total\t\t\t%s\n", totals.Total.StringFixed(2))
	_ = w.Flush()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
