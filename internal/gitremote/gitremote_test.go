package gitremote

import "testing"

func TestParseRemoteURL(t *testing.T) {
	cases := []struct {
		in   string
		want Remote
	}{
		{
			"git@gitlab.com:acme/widgets.git",
			Remote{Host: "gitlab.com", Namespace: "acme", Name: "widgets"},
		},
		{
			"git@gitlab.example.com:group/subgroup/widgets.git",
			Remote{Host: "gitlab.example.com", Namespace: "group/subgroup", Name: "widgets"},
		},
		{
			"https://gitlab.com/acme/widgets.git",
			Remote{Host: "gitlab.com", Namespace: "acme", Name: "widgets"},
		},
		{
			"https://gitlab.com/acme/widgets",
			Remote{Host: "gitlab.com", Namespace: "acme", Name: "widgets"},
		},
		{
			"http://gitlab.internal:8080/team/tools/cli.git",
			Remote{Host: "gitlab.internal", Namespace: "team/tools", Name: "cli"},
		},
	}

	for _, c := range cases {
		got, err := ParseRemoteURL(c.in)
		if err != nil {
			t.Errorf("ParseRemoteURL(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseRemoteURL(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseRemoteURLRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"ftp://gitlab.com/a/b.git",
		"git@gitlab.com",
		"git@gitlab.com:onlyname.git",
		"https://gitlab.com/onlyname",
	}
	for _, c := range cases {
		if _, err := ParseRemoteURL(c); err == nil {
			t.Errorf("ParseRemoteURL(%q) should fail", c)
		}
	}
}

func TestRemotePath(t *testing.T) {
	r := Remote{Host: "gitlab.com", Namespace: "group/sub", Name: "proj"}
	if r.Path() != "group/sub/proj" {
		t.Fatalf("Path() = %q", r.Path())
	}
}
