package hosts_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/aretw0/hosts"
)

func tempHosts(content string) (string, func()) {
	dir, err := os.MkdirTemp("", "hosts-example-*")
	if err != nil {
		log.Fatal(err)
	}
	path := filepath.Join(dir, "hosts")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		log.Fatal(err)
	}
	return path, func() { os.RemoveAll(dir) }
}

// Example_basic adds a mapping and reads it back.
func Example_basic() {
	path, cleanup := tempHosts("# local names\n127.0.0.1 localhost\n")
	defer cleanup()

	svc, err := hosts.New(path)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if err := svc.Add(ctx, "10.0.0.5", "api.dev.local"); err != nil {
		log.Fatal(err)
	}

	mappings, err := svc.Get(ctx, "10.0.0.5", nil)
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range mappings {
		fmt.Println(m)
	}
	// Output:
	// 10.0.0.5 api.dev.local
}

// ExampleService_Remove narrows a removal with a regular expression.
func ExampleService_Remove() {
	path, cleanup := tempHosts("10.0.0.5 foo\n10.0.0.5 bar\n")
	defer cleanup()

	svc, err := hosts.New(path)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := svc.Remove(ctx, "10.0.0.5", hosts.Pattern(regexp.MustCompile(`^f`))); err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%q\n", data)
	// Output:
	// "10.0.0.5 bar\n"
}

// ExampleService_IPs lists every mapped ip in file order.
func ExampleService_IPs() {
	path, cleanup := tempHosts("127.0.0.1 localhost\n# comment\n10.0.0.5 a\n10.0.0.5 b\n")
	defer cleanup()

	svc, err := hosts.New(path)
	if err != nil {
		log.Fatal(err)
	}

	ips, err := svc.IPs(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ips)
	// Output:
	// [127.0.0.1 10.0.0.5 10.0.0.5]
}

// ExampleService_Batch applies several edits with a single save.
func ExampleService_Batch() {
	path, cleanup := tempHosts("127.0.0.1 localhost")
	defer cleanup()

	svc, err := hosts.New(path)
	if err != nil {
		log.Fatal(err)
	}

	err = svc.Batch(context.Background(), func(tx *hosts.Tx) error {
		if err := tx.Add("10.0.0.1", "one.local"); err != nil {
			return err
		}
		if err := tx.Add("10.0.0.2", "two.local"); err != nil {
			return err
		}
		return tx.Remove("127.0.0.1", hosts.Exact("localhost"))
	})
	if err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
	// Output:
	// 10.0.0.1 one.local
	// 10.0.0.2 two.local
}
