// Package cardex embeds the cardex search and navigation service in a Go program.
//
// A client owns a session store and the backend clients. Each session keeps the
// result sets of its last searches so that later commands can explore and open them.
//
//	client, _ := cardex.New(ctx,
//	    cardex.WithArticleEndpoint(cardex.EngineMix, "http://search:8000/search/mix"),
//	    cardex.WithQAEndpoint("http://search:8000/search/qa"),
//	    cardex.WithRestaurantEndpoint("http://search:8000/search/yelp"),
//	    cardex.WithEntityLinker("http://el:8000/link"),
//	)
//	defer client.Close()
//
//	id, _ := client.Start(ctx)
//	res, _ := client.Run(ctx, id, "how do heaps work?")
//	_, _ = client.Run(ctx, id, "explore: "+res.Articles[0].Key)
//	opened, _ := client.Run(ctx, id, "open: 0")
//	fmt.Println(opened.Article.Title, opened.Article.Concepts)
package cardex
