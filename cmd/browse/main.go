package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/query"
	"github.com/yourorg/listing-api/internal/session"
)

// browse drives a filter session against the seeded catalog from the command
// line, the same path the listings page takes: criteria change -> re-query ->
// latest result wins.
func main() {
	city := flag.String("city", "", "city substring filter")
	ptype := flag.String("type", "", "property type (house|apartment|condo|townhouse|land)")
	minPrice := flag.Int("minprice", 0, "inclusive minimum price")
	maxPrice := flag.Int("maxprice", 0, "inclusive maximum price")
	beds := flag.Int("beds", 0, "minimum bedrooms")
	baths := flag.Int("baths", 0, "minimum bathrooms")
	verified := flag.Bool("verified", false, "verified listings only")
	sortBy := flag.String("sortby", "newest", "sort order (newest|price_asc|price_desc|popular)")
	latency := flag.Bool("latency", false, "simulate backend latency")
	flag.Parse()

	store := catalog.Seeded()
	var delays query.Delays
	if *latency {
		delays = query.DefaultDelays()
	}
	svc := query.NewService(store, query.WithDelays(delays))
	sess := session.New(svc)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	seq := sess.Update(ctx, func(c *query.Criteria) {
		c.City = *city
		c.Type = catalog.PropertyType(*ptype)
		c.MinPrice = *minPrice
		c.MaxPrice = *maxPrice
		c.Bedrooms = *beds
		c.Bathrooms = *baths
		c.Verified = *verified
		c.SortBy = query.SortOrder(*sortBy)
	})

	for {
		select {
		case res := <-sess.Results():
			if res.Seq != seq {
				continue // stale, already superseded
			}
			if res.Err != nil {
				log.Fatalf("query failed: %v", res.Err)
			}
			printProperties(res.Properties)
			return
		case <-ctx.Done():
			log.Fatal("timed out waiting for results")
		}
	}
}

func printProperties(props []catalog.Property) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRICE\tTYPE\tBEDS\tBATHS\tCITY\tVERIFIED")
	for _, p := range props {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\t%s\t%v\n",
			p.ID, p.Price, p.Type, p.Bedrooms, p.Bathrooms, p.Location.City, p.Verified)
	}
	tw.Flush()
	fmt.Printf("%d properties\n", len(props))
}
